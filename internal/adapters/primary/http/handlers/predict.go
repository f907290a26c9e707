package handlers

import (
	"errors"
	"net/http"

	"mental-health-predictor/internal/adapters/primary/http/dto"
	"mental-health-predictor/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) Predict(c *gin.Context) {
	if h.loadErr != nil {
		mapDomainError(c, h.loadErr)
		return
	}

	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pred, err := h.predictionSvc.Predict(c.Request.Context(), req.Text)
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyInput) {
			log.WithError(err).Error("predict failed")
		}
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(pred))
}

func (h *Handler) ListLabels(c *gin.Context) {
	if h.loadErr != nil {
		mapDomainError(c, h.loadErr)
		return
	}
	c.JSON(http.StatusOK, dto.LabelsResponse{Labels: h.predictionSvc.Labels().Strings()})
}

func (h *Handler) GetModelInfo(c *gin.Context) {
	if h.loadErr != nil {
		mapDomainError(c, h.loadErr)
		return
	}
	c.JSON(http.StatusOK, dto.ToModelInfoResponse(h.predictionSvc.Info()))
}
