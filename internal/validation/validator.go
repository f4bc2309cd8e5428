package validation

import (
	"fmt"
	"math"

	"credit-risk-service/internal/domain"
)

// Validate checks a raw request body against the features the model
// declares and returns a fully-specified feature vector. Every required
// feature must be present as a finite number; a missing feature is a hard
// failure, never a silent zero contribution. All offending fields are
// collected so the caller can fix them in one round trip. Extra fields the
// model does not know are ignored.
func Validate(raw map[string]any, model *domain.ModelArtifact) (domain.FeatureVector, error) {
	verr := &domain.ValidationError{}
	features := make(domain.FeatureVector, len(model.Coefficients))

	for _, name := range model.RequiredFeatures() {
		value, ok := raw[name]
		if !ok {
			verr.Add(name, "required feature is missing")
			continue
		}

		num, ok := toFloat(value)
		if !ok {
			verr.Add(name, "value is not a number")
			continue
		}
		if math.IsNaN(num) || math.IsInf(num, 0) {
			verr.Add(name, "value is not finite")
			continue
		}

		if spec, declared := model.Schema[name]; declared {
			if reason := checkSpec(spec, num); reason != "" {
				verr.Add(name, reason)
				continue
			}
		}

		features[name] = num
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return features, nil
}

// checkSpec enforces a declared feature domain: integer fields reject
// fractional values, bounds are inclusive.
func checkSpec(spec domain.FeatureSpec, value float64) string {
	if spec.Type == domain.FeatureTypeInteger && value != math.Trunc(value) {
		return "value must be an integer"
	}
	if spec.Min != nil && value < *spec.Min {
		return fmt.Sprintf("value is below the minimum of %g", *spec.Min)
	}
	if spec.Max != nil && value > *spec.Max {
		return fmt.Sprintf("value is above the maximum of %g", *spec.Max)
	}
	return ""
}

// toFloat accepts the numeric shapes a decoded JSON body can carry.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
