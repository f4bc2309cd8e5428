package handler

import (
	"net/http"
	"time"

	"credit-risk-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. It never depends on the model being loaded: a
// process running without an artifact reports degraded instead of taking
// the whole health surface down.
func (h *Handler) Health(c *gin.Context) {
	status := "healthy"
	modelName := ""
	if h.model == nil {
		status = "degraded"
	} else {
		modelName = h.model.Metadata.ModelName
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"model_ready": h.model != nil,
		"model_name":  modelName,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ModelInfo returns the active model's metadata. Coefficient values stay
// internal; callers only learn how many features the model carries.
func (h *Handler) ModelInfo(c *gin.Context) {
	if h.model == nil {
		mapDomainError(c, domain.ErrModelNotReady)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metadata":      h.model.Metadata,
		"feature_count": len(h.model.Coefficients),
	})
}

// ModelSchema publishes the required feature names with their declared
// types and bounds so callers can validate inputs before sending them.
func (h *Handler) ModelSchema(c *gin.Context) {
	if h.model == nil {
		mapDomainError(c, domain.ErrModelNotReady)
		return
	}

	required := h.model.RequiredFeatures()
	features := make(map[string]domain.FeatureSpec, len(required))
	for _, name := range required {
		spec, ok := h.model.Schema[name]
		if !ok {
			spec = domain.FeatureSpec{Type: domain.FeatureTypeNumber}
		}
		features[name] = spec
	}

	c.JSON(http.StatusOK, gin.H{
		"required": required,
		"features": features,
	})
}
