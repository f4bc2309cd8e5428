package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Artifact ArtifactConfig
	Scoring  ScoringConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type ArtifactConfig struct {
	CoefficientsPath string
	MetadataPath     string
}

type ScoringConfig struct {
	// Threshold is the probability above which a request is classified
	// high_risk. Risk policy tuning happens here, not in the engine.
	Threshold float64

	// MaxBatchSize caps /predict/batch payloads.
	MaxBatchSize int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("MODEL_COEFFICIENTS_PATH", "model_artifact/model_coefficients.json")
	v.SetDefault("MODEL_METADATA_PATH", "model_artifact/deployment_config.json")
	v.SetDefault("RISK_THRESHOLD", 0.5)
	v.SetDefault("MAX_BATCH_SIZE", 100)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Artifact: ArtifactConfig{
			CoefficientsPath: v.GetString("MODEL_COEFFICIENTS_PATH"),
			MetadataPath:     v.GetString("MODEL_METADATA_PATH"),
		},
		Scoring: ScoringConfig{
			Threshold:    v.GetFloat64("RISK_THRESHOLD"),
			MaxBatchSize: v.GetInt("MAX_BATCH_SIZE"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
