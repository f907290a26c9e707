package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex_RendersForm(t *testing.T) {
	r := setupRouter(t, true)

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, 1, doc.Find("form#analyze textarea[name=text]").Length())
	assert.Equal(t, 0, doc.Find("#result").Length())
	assert.Equal(t, 0, doc.Find("#error").Length())
	assert.Equal(t, 3, doc.Find("#helplines li").Length())
}

func TestAnalyze_ShowsLabel(t *testing.T) {
	r := setupRouter(t, true)

	w := postForm(r, "I feel hopeless and can't sleep")
	assert.Equal(t, http.StatusOK, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, "Depression", strings.TrimSpace(doc.Find("#result .label").Text()))
	assert.Equal(t, 3, doc.Find("#notes li").Length())
	// input is echoed back into the form
	assert.Equal(t, "I feel hopeless and can't sleep", doc.Find("textarea#text").Text())
}

func TestAnalyze_EmptyInputShowsWarning(t *testing.T) {
	r := setupRouter(t, true)

	for _, text := range []string{"", "   \n"} {
		w := postForm(r, text)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		doc := parseHTML(t, w)
		assert.Contains(t, doc.Find("#warning").Text(), "Input Required")
		assert.Equal(t, 0, doc.Find("#result").Length())
	}
}

func TestAnalyze_InferenceFailureShownVerbatim(t *testing.T) {
	r := setupRouter(t, true)

	w := postForm(r, "feel \xff\xfe")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	doc := parseHTML(t, w)
	assert.Contains(t, doc.Find("#error").Text(), "input is not valid UTF-8")
	// the form stays available for a retry
	assert.Equal(t, 1, doc.Find("form#analyze").Length())
}

func TestIndex_MissingArtifactsRenderErrorView(t *testing.T) {
	r := setupRouter(t, false)

	w := get(r, "/")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	doc := parseHTML(t, w)
	assert.Contains(t, doc.Find("#error h2").Text(), "Files Not Found")
	assert.Equal(t, 0, doc.Find("form#analyze").Length())
	// static resources still render
	assert.Equal(t, 3, doc.Find("#helplines li").Length())
}

func TestAnalyze_MissingArtifactsDoesNotPredict(t *testing.T) {
	r := setupRouter(t, false)

	w := postForm(r, "I feel hopeless")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	doc := parseHTML(t, w)
	assert.Equal(t, 0, doc.Find("#result").Length())
	assert.Contains(t, doc.Find("#error").Text(), "Files Not Found")
}

func TestHealth(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(setupRouter(t, true), "/healthz").Code)

	w := get(setupRouter(t, false), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "artifact not found")
}
