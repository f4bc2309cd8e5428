package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArtifactNotFound   = errors.New("coefficient artifact not found")
	ErrArtifactUnparsable = errors.New("coefficient artifact is not valid JSON")
	ErrEmptyCoefficients  = errors.New("coefficient artifact declares no features")
	ErrMissingIntercept   = errors.New("coefficient artifact has no Intercept entry")
	ErrDuplicateFeature   = errors.New("duplicate feature name in coefficient artifact")
	ErrInvalidCoefficient = errors.New("coefficient value is not a finite number")
	ErrEmptyFeatureName   = errors.New("coefficient artifact contains an empty feature name")
	ErrModelNotReady      = errors.New("model not loaded")
	ErrBatchTooLarge      = errors.New("batch exceeds the configured size limit")
)

// FieldError names one offending input field and why it was rejected.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every offending field of one request, so a caller
// can fix all of them in a single round trip.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid features: %s", strings.Join(names, ", "))
}

// Add records one offending field.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
