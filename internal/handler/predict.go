package handler

import (
	"errors"
	"net/http"

	"credit-risk-service/internal/domain"
	"credit-risk-service/internal/validation"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// batchItem is one slot of a batch response. Exactly one of Result or
// Error is set; slot order matches the request order.
type batchItem struct {
	Result *domain.PredictionResult `json:"result,omitempty"`
	Error  *domain.ValidationError  `json:"error,omitempty"`
}

// Predict scores one raw feature map.
func (h *Handler) Predict(c *gin.Context) {
	if h.model == nil {
		mapDomainError(c, domain.ErrModelNotReady)
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}

	features, err := validation.Validate(raw, h.model)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	result := h.engine.Score(h.model, features)
	c.JSON(http.StatusOK, result)
}

// PredictBatch scores an ordered array of feature maps. Items are
// independent: a malformed item only invalidates its own slot, the rest of
// the batch still scores.
func (h *Handler) PredictBatch(c *gin.Context) {
	if h.model == nil {
		mapDomainError(c, domain.ErrModelNotReady)
		return
	}

	var items []map[string]any
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON array of objects"})
		return
	}
	if len(items) > h.maxBatchSize {
		mapDomainError(c, domain.ErrBatchTooLarge)
		return
	}

	predictions := make([]batchItem, len(items))
	for i, raw := range items {
		features, err := validation.Validate(raw, h.model)
		if err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				log.WithError(err).Error("batch item validation failed unexpectedly")
				verr = &domain.ValidationError{Fields: []domain.FieldError{{Field: "", Reason: "internal error"}}}
			}
			predictions[i] = batchItem{Error: verr}
			continue
		}
		result := h.engine.Score(h.model, features)
		predictions[i] = batchItem{Result: &result}
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": predictions,
		"count":       len(predictions),
	})
}
