package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all moderator configuration.
type Config struct {
	// HTTP server settings
	HTTPAddress string

	// OpenAI settings
	OpenAIAPIKey       string
	ReviewModel        string
	TranscriptionModel string

	// Host tool paths; empty means resolve from PATH
	FFmpegPath    string
	TesseractPath string
}

// Load reads configuration from files and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables before reading the config file
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":        "HTTP_ADDRESS",
		"OpenAIAPIKey":       "OPENAI_API_KEY",
		"ReviewModel":        "REVIEW_MODEL",
		"TranscriptionModel": "TRANSCRIPTION_MODEL",
		"FFmpegPath":         "FFMPEG_PATH",
		"TesseractPath":      "TESSERACT_PATH",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("moderator_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.content-moderator")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("ReviewModel", "gpt-4o-mini")
	v.SetDefault("TranscriptionModel", "whisper-1")
}

func validate(config *Config) error {
	if config.OpenAIAPIKey == "" {
		return fmt.Errorf("missing required environment variable: OPENAI_API_KEY")
	}
	return nil
}
