package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"credit-risk-service/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Load reads the coefficient and metadata documents and materializes the
// immutable model artifact. Coefficient problems are load errors; metadata
// problems degrade to defaults because metadata is descriptive, not
// load-critical.
func Load(coeffPath, metaPath string) (*domain.ModelArtifact, error) {
	coeffs, err := loadCoefficients(coeffPath)
	if err != nil {
		return nil, err
	}

	intercept, ok := coeffs[domain.InterceptKey]
	if !ok {
		return nil, domain.ErrMissingIntercept
	}
	delete(coeffs, domain.InterceptKey)

	if len(coeffs) == 0 {
		return nil, domain.ErrEmptyCoefficients
	}

	meta, schema := loadMetadata(metaPath)

	// Schema entries for features the model does not declare are dropped;
	// they cannot be enforced against any input.
	for name := range schema {
		if _, ok := coeffs[name]; !ok {
			log.WithField("feature", name).Warn("feature_schema entry has no matching coefficient, ignoring")
			delete(schema, name)
		}
	}

	log.WithFields(log.Fields{
		"model_name":    meta.ModelName,
		"model_version": meta.ModelVersion,
		"features":      len(coeffs),
	}).Info("model artifact loaded")

	return &domain.ModelArtifact{
		Intercept:    intercept,
		Coefficients: coeffs,
		Metadata:     meta,
		Schema:       schema,
	}, nil
}

// loadCoefficients parses {"coefficients": {name: weight, ...}}. The object
// is walked token by token: plain unmarshalling into a map would silently
// keep the last of two duplicate keys, and duplicates are a load error here.
func loadCoefficients(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("read coefficient artifact: %w", err)
	}

	var doc struct {
		Coefficients json.RawMessage `json:"coefficients"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactUnparsable, err)
	}
	if len(doc.Coefficients) == 0 {
		return nil, domain.ErrEmptyCoefficients
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Coefficients))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactUnparsable, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: coefficients is not an object", domain.ErrArtifactUnparsable)
	}

	coeffs := make(map[string]float64)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArtifactUnparsable, err)
		}
		name := keyTok.(string)
		if name == "" {
			return nil, domain.ErrEmptyFeatureName
		}
		if _, exists := coeffs[name]; exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateFeature, name)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrArtifactUnparsable, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCoefficient, name)
		}
		weight, err := num.Float64()
		if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCoefficient, name)
		}
		coeffs[name] = weight
	}

	if len(coeffs) == 0 {
		return nil, domain.ErrEmptyCoefficients
	}
	return coeffs, nil
}

type metadataDoc struct {
	domain.Metadata
	FeatureSchema domain.FeatureSchema `json:"feature_schema"`
}

func loadMetadata(path string) (domain.Metadata, domain.FeatureSchema) {
	defaults := domain.Metadata{ModelName: "unknown", ModelVersion: "0.0.0"}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Warn("metadata artifact unavailable, using defaults")
		return defaults, nil
	}

	var doc metadataDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.WithError(err).Warn("metadata artifact unparsable, using defaults")
		return defaults, nil
	}

	if doc.ModelName == "" {
		doc.ModelName = defaults.ModelName
	}
	if doc.ModelVersion == "" {
		doc.ModelVersion = defaults.ModelVersion
	}
	return doc.Metadata, doc.FeatureSchema
}
