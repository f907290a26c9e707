package textmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/ports/output"
)

// ============================================================================
// Artifact documents
// ============================================================================

type vectorizerArtifact struct {
	Kind           string         `json:"kind" yaml:"kind"`
	Lowercase      *bool          `json:"lowercase" yaml:"lowercase"`
	NgramRange     []int          `json:"ngram_range" yaml:"ngram_range"`
	MinTokenLength int            `json:"min_token_length" yaml:"min_token_length"`
	StopWords      []string       `json:"stop_words" yaml:"stop_words"`
	Vocabulary     map[string]int `json:"vocabulary" yaml:"vocabulary"`
	IDF            []float64      `json:"idf" yaml:"idf"`
	SublinearTF    bool           `json:"sublinear_tf" yaml:"sublinear_tf"`
	Norm           string         `json:"norm" yaml:"norm"`
}

type classifierArtifact struct {
	Kind           string      `json:"kind" yaml:"kind"`
	Name           string      `json:"name" yaml:"name"`
	Classes        []string    `json:"classes" yaml:"classes"`
	Coef           [][]float64 `json:"coef" yaml:"coef"`
	Intercept      []float64   `json:"intercept" yaml:"intercept"`
	ClassLogPrior  []float64   `json:"class_log_prior" yaml:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob" yaml:"feature_log_prob"`
}

type classifierFactory func(name string, a classifierArtifact) (ports.Classifier, error)

var classifierFactories = map[string]classifierFactory{
	KindLogisticRegression: linearFactory,
	KindLinearSVC:          linearFactory,
	KindSGD:                linearFactory,
	KindMultinomialNB: func(name string, a classifierArtifact) (ports.Classifier, error) {
		return newNaiveBayesClassifier(name, a)
	},
}

func linearFactory(name string, a classifierArtifact) (ports.Classifier, error) {
	return newLinearClassifier(name, a)
}

// ============================================================================
// Decoder
// ============================================================================

// Decoder reads JSON or YAML artifact documents. The format is picked from
// the artifact name's extension; anything other than .yaml/.yml is JSON.
type Decoder struct{}

func NewDecoder() ports.ArtifactDecoder {
	return &Decoder{}
}

func (d *Decoder) DecodeVectorizer(name string, data []byte) (ports.Vectorizer, error) {
	var a vectorizerArtifact
	if err := unmarshal(name, data, &a); err != nil {
		return nil, corrupt(name, err)
	}

	switch a.Kind {
	case KindTFIDF, "":
		v, err := newTFIDFVectorizer(a)
		if err != nil {
			return nil, corrupt(name, err)
		}
		return v, nil
	default:
		return nil, corrupt(name, fmt.Errorf("unsupported vectorizer kind %q", a.Kind))
	}
}

func (d *Decoder) DecodeClassifier(name string, data []byte) (ports.Classifier, error) {
	var a classifierArtifact
	if err := unmarshal(name, data, &a); err != nil {
		return nil, corrupt(name, err)
	}

	factory, ok := classifierFactories[a.Kind]
	if !ok {
		return nil, corrupt(name, fmt.Errorf("unsupported classifier kind %q", a.Kind))
	}

	modelName := a.Name
	if modelName == "" {
		modelName = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	c, err := factory(modelName, a)
	if err != nil {
		return nil, corrupt(name, err)
	}
	return c, nil
}

func unmarshal(name string, data []byte, out interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("artifact is empty")
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(data, out)
	}
}

func corrupt(name string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrArtifactCorrupt, name, err)
}
