package handlers

import (
	"errors"
	"net/http"

	"mental-health-predictor/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// User-correctable
	case errors.Is(err, domain.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Startup failures: serving is unavailable
	case errors.Is(err, domain.ErrArtifactNotFound),
		errors.Is(err, domain.ErrArtifactCorrupt),
		errors.Is(err, domain.ErrModelNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	// Surfaced verbatim
	case errors.Is(err, domain.ErrInferenceFailure):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type errorView struct {
	Title   string
	Message string
}

// toErrorView renders a startup or inference error as the panel text shown
// on the page.
func toErrorView(err error) *errorView {
	switch {
	case errors.Is(err, domain.ErrArtifactNotFound):
		return &errorView{
			Title:   "Error: Files Not Found",
			Message: "Model or vectorizer file not found. Please make sure the model and vectorizer artifacts are available (" + err.Error() + ").",
		}
	default:
		return &errorView{
			Title:   "An Error Occurred",
			Message: err.Error(),
		}
	}
}
