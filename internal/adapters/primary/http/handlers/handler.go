package handlers

import (
	"errors"
	"fmt"

	"mental-health-predictor/internal/adapters/primary/http/web"
	"mental-health-predictor/internal/core/domain"
	"mental-health-predictor/internal/core/services"

	"github.com/gin-gonic/gin"
)

// Handler serves the page and JSON API. When artifacts failed to load,
// predictionSvc is nil and loadErr explains why; every view then degrades
// to the error panel.
type Handler struct {
	predictionSvc *services.PredictionService
	loadErr       error
	content       web.Content
}

func New(predictionSvc *services.PredictionService, loadErr error) *Handler {
	switch {
	case predictionSvc == nil && loadErr == nil:
		loadErr = domain.ErrModelNotLoaded
	case loadErr != nil && !errors.Is(loadErr, domain.ErrArtifactNotFound) &&
		!errors.Is(loadErr, domain.ErrArtifactCorrupt) && !errors.Is(loadErr, domain.ErrModelNotLoaded):
		loadErr = fmt.Errorf("%w: %v", domain.ErrModelNotLoaded, loadErr)
	}
	return &Handler{
		predictionSvc: predictionSvc,
		loadErr:       loadErr,
		content:       web.DefaultContent,
	}
}

// RegisterPages installs the HTML templates and page routes on the engine.
func (h *Handler) RegisterPages(r *gin.Engine) {
	r.SetHTMLTemplate(web.Templates())

	r.GET("/", h.Index)
	r.POST("/analyze", h.Analyze)
	r.GET("/healthz", h.Health)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
	r.GET("/labels", h.ListLabels)
	r.GET("/model", h.GetModelInfo)
}
