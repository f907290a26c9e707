package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

type Helpline struct {
	Name    string
	Contact string
	URL     string
}

// Content is the static text rendered on every view.
type Content struct {
	Title        string
	Subtitle     string
	HowItWorks   string
	Placeholder  string
	ResultAdvice string
	Notes        []string
	About        string
	Features     []string
	Disclaimer   string
	Helplines    []Helpline
	WarningSigns []string
	FooterOrg    string
	FooterTitle  string
	FooterTag    string
}

var DefaultContent = Content{
	Title:        "Mental Health Condition Prediction",
	Subtitle:     "AI-powered analysis to help understand mental health patterns",
	HowItWorks:   "Enter text describing your thoughts, feelings, or experiences, and the model will analyze patterns to predict potential mental health conditions. This tool is for educational purposes and should not replace professional medical advice.",
	Placeholder:  "Describe your thoughts, feelings, or any mental health concerns you'd like to analyze...",
	ResultAdvice: "Please consult with a mental health professional for proper diagnosis and treatment.",
	Notes: []string{
		"This prediction is based on AI analysis and should not be considered a medical diagnosis.",
		"If you're experiencing mental health concerns, please reach out to a qualified healthcare provider.",
		"Crisis resources are available 24/7 if you need immediate support.",
	},
	About: "This tool uses machine learning to analyze text patterns and predict potential mental health conditions.",
	Features: []string{
		"Advanced text analysis",
		"Pattern recognition",
		"Instant predictions",
	},
	Disclaimer: "This tool is for educational purposes only and should not replace professional medical advice.",
	Helplines: []Helpline{
		{Name: "National Suicide Prevention Lifeline", Contact: "+880 1779-554391"},
		{Name: "Crisis Text Line", Contact: "Text HOME to 09612-119911"},
		{Name: "International Association for Suicide Prevention", Contact: "iasp.info", URL: "https://www.iasp.info"},
	},
	WarningSigns: []string{
		"Persistent sadness or anxiety",
		"Thoughts of self-harm",
		"Significant life disruptions",
		"Substance abuse issues",
		"Difficulty functioning daily",
	},
	FooterOrg:   "Green University Of Bangladesh",
	FooterTitle: "Mental Health Prediction System",
	FooterTag:   "Empowering mental health awareness through AI technology",
}
