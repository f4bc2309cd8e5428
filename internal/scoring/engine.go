package scoring

import (
	"math"
	"time"

	"credit-risk-service/internal/domain"
)

// DefaultThreshold is the probability cutoff separating low_risk from
// high_risk. The running value comes from config so risk policy can change
// without touching the algorithm.
const DefaultThreshold = 0.5

// riskScoreScale fixes the displayed risk score to two decimal places.
const riskScoreScale = 100

// Engine scores feature vectors against a loaded model. It holds only the
// decision threshold; scoring itself is pure and shares no mutable state,
// so one engine serves all requests concurrently.
type Engine struct {
	threshold float64
}

func NewEngine(threshold float64) *Engine {
	return &Engine{threshold: threshold}
}

// Score computes the logistic prediction for one validated feature vector.
// Validation upstream guarantees every coefficient has a finite value, so
// this is total: no error path for any finite input.
func (e *Engine) Score(model *domain.ModelArtifact, features domain.FeatureVector) domain.PredictionResult {
	linear := model.Intercept
	for name, weight := range model.Coefficients {
		linear += weight * features[name]
	}

	probability := sigmoid(linear)

	classification := domain.ClassificationLowRisk
	if probability > e.threshold {
		classification = domain.ClassificationHighRisk
	}

	return domain.PredictionResult{
		Classification: classification,
		Probability:    probability,
		RiskScore:      math.Round(probability*100*riskScoreScale) / riskScoreScale,
		ModelVersion:   model.Metadata.ModelVersion,
		Timestamp:      time.Now().UTC(),
	}
}

// sigmoid is the logistic transform, branched on the sign of x so the
// exponential never overflows: exp is only ever taken of a non-positive
// argument, keeping the result inside [0,1] for any finite x.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	ex := math.Exp(x)
	return ex / (1 + ex)
}
