package handlers

import (
	"errors"
	"net/http"

	"mental-health-predictor/internal/adapters/primary/http/web"
	"mental-health-predictor/internal/core/domain"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type pageView struct {
	Content       web.Content
	Text          string
	Label         string
	InputRequired bool
	Failure       *errorView
	Fatal         *errorView
}

func (h *Handler) render(c *gin.Context, status int, view pageView) {
	view.Content = h.content
	c.HTML(status, "index.tmpl", view)
}

func (h *Handler) Index(c *gin.Context) {
	if h.loadErr != nil {
		h.render(c, http.StatusServiceUnavailable, pageView{Fatal: toErrorView(h.loadErr)})
		return
	}
	h.render(c, http.StatusOK, pageView{})
}

func (h *Handler) Analyze(c *gin.Context) {
	if h.loadErr != nil {
		h.render(c, http.StatusServiceUnavailable, pageView{Fatal: toErrorView(h.loadErr)})
		return
	}

	text := c.PostForm("text")
	view := pageView{Text: text}

	pred, err := h.predictionSvc.Predict(c.Request.Context(), text)
	switch {
	case err == nil:
		view.Label = string(pred.Label)
		h.render(c, http.StatusOK, view)
	case errors.Is(err, domain.ErrEmptyInput):
		view.InputRequired = true
		h.render(c, http.StatusBadRequest, view)
	default:
		log.WithError(err).Error("analyze failed")
		view.Failure = toErrorView(err)
		h.render(c, http.StatusInternalServerError, view)
	}
}

func (h *Handler) Health(c *gin.Context) {
	if h.loadErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": h.loadErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
