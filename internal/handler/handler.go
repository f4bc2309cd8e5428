package handler

import (
	"credit-risk-service/internal/domain"
	"credit-risk-service/internal/scoring"

	"github.com/gin-gonic/gin"
)

// Handler serves the scoring API. The model is loaded once before the
// server starts and is read-only from here on, so handlers share it across
// concurrent requests without locking.
type Handler struct {
	model        *domain.ModelArtifact
	engine       *scoring.Engine
	maxBatchSize int
}

func New(model *domain.ModelArtifact, engine *scoring.Engine, maxBatchSize int) *Handler {
	return &Handler{model: model, engine: engine, maxBatchSize: maxBatchSize}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/model/info", h.ModelInfo)
	r.GET("/model/schema", h.ModelSchema)
	r.POST("/predict", h.Predict)
	r.POST("/predict/batch", h.PredictBatch)
}
