package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestHealth(t *testing.T) {
	r := setupRouter(creditModel())

	w, resp := getJSON(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, true, resp["model_ready"])
	assert.Equal(t, "credit-risk-lr", resp["model_name"])
	assert.NotEmpty(t, resp["timestamp"])
}

func TestHealth_DegradedWithoutModel(t *testing.T) {
	r := setupRouter(nil)

	w, resp := getJSON(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "degraded", resp["status"])
	assert.Equal(t, false, resp["model_ready"])
}

func TestModelInfo(t *testing.T) {
	r := setupRouter(creditModel())

	w, resp := getJSON(t, r, "/model/info")
	assert.Equal(t, http.StatusOK, w.Code)

	meta := resp["metadata"].(map[string]any)
	assert.Equal(t, "credit-risk-lr", meta["model_name"])
	assert.Equal(t, "2.0.0", meta["model_version"])
	assert.Equal(t, float64(7), resp["feature_count"])

	// Coefficient values are internal and never leave the process.
	assert.NotContains(t, w.Body.String(), "coefficients")
	assert.NotContains(t, w.Body.String(), "0.00002")
}

func TestModelInfo_NotReady(t *testing.T) {
	r := setupRouter(nil)

	w, _ := getJSON(t, r, "/model/info")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestModelSchema(t *testing.T) {
	r := setupRouter(creditModel())

	w, resp := getJSON(t, r, "/model/schema")
	assert.Equal(t, http.StatusOK, w.Code)

	required := resp["required"].([]any)
	assert.Equal(t, []any{
		"Age", "CreditScore", "DebtToIncome", "EmploymentYears",
		"Income", "LoanAmount", "LoanTerm",
	}, required)

	features := resp["features"].(map[string]any)
	score := features["CreditScore"].(map[string]any)
	assert.Equal(t, "integer", score["type"])
	assert.Equal(t, float64(300), score["min"])
	assert.Equal(t, float64(850), score["max"])

	income := features["Income"].(map[string]any)
	assert.Equal(t, "number", income["type"])
}

func TestModelSchema_NotReady(t *testing.T) {
	r := setupRouter(nil)

	w, _ := getJSON(t, r, "/model/schema")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
