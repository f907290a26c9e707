package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"mental-health-predictor/internal/adapters/secondary/filesystem"
	"mental-health-predictor/internal/adapters/secondary/textmodel"
	"mental-health-predictor/internal/core/services"
	"mental-health-predictor/internal/testutil"
)

// setupRouter wires the handler the way main does, over either the fixture
// artifacts or an empty directory.
func setupRouter(t *testing.T, withArtifacts bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	if withArtifacts {
		dir = testutil.WriteArtifacts(t)
	}

	loader := services.NewArtifactLoader(filesystem.NewFileSource(dir), textmodel.NewDecoder(), nil)
	svc, err := loader.Load(context.Background(), "trained_model.json", "vectorizer.json")

	h := New(svc, err)
	r := gin.New()
	h.RegisterPages(r)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postForm(r *gin.Engine, text string) *httptest.ResponseRecorder {
	form := url.Values{"text": {text}}
	req, _ := http.NewRequest("POST", "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func newRecorderContext(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}
