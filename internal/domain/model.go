package domain

import (
	"sort"
	"time"
)

// Classification labels produced by the prediction engine.
const (
	ClassificationLowRisk  = "low_risk"
	ClassificationHighRisk = "high_risk"
)

// InterceptKey is the coefficient name the fitting pipeline uses for the
// model intercept. It is never a request feature.
const InterceptKey = "Intercept"

// ModelArtifact is the loaded representation of one fitted logistic
// regression model. It is constructed exactly once at startup and shared
// read-only by every request handler; nothing mutates it after load.
type ModelArtifact struct {
	Intercept    float64
	Coefficients map[string]float64
	Metadata     Metadata
	Schema       FeatureSchema
}

// RequiredFeatures returns the feature names a request must supply,
// sorted for stable schema output.
func (m *ModelArtifact) RequiredFeatures() []string {
	names := make([]string, 0, len(m.Coefficients))
	for name := range m.Coefficients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Metadata describes the fitted model. Informational only: the prediction
// engine never reads it except to stamp results with the version.
type Metadata struct {
	ModelName    string             `json:"model_name"`
	ModelVersion string             `json:"model_version"`
	CreatedAt    time.Time          `json:"created_at,omitempty"`
	Metrics      map[string]float64 `json:"performance_metrics,omitempty"`
}

// FeatureSpec is the declared domain of one input feature. Bounds are
// inclusive; nil means unbounded on that side.
type FeatureSpec struct {
	Type string   `json:"type"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

const (
	FeatureTypeNumber  = "number"
	FeatureTypeInteger = "integer"
)

// FeatureSchema maps feature names to their declared domains. Declared in
// the metadata artifact; features without an entry only need a finite value.
type FeatureSchema map[string]FeatureSpec

// FeatureVector is one validated scoring input: a value for every feature
// the model declares.
type FeatureVector map[string]float64

// PredictionResult is the outcome of scoring one feature vector.
type PredictionResult struct {
	Classification string    `json:"classification"`
	Probability    float64   `json:"probability"`
	RiskScore      float64   `json:"risk_score"`
	ModelVersion   string    `json:"model_version"`
	Timestamp      time.Time `json:"timestamp"`
}
