// Package config loads all gateway configuration from environment
// variables. The returned Config is read once at startup and treated as
// immutable afterwards.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the gateway.
type Config struct {
	Server      ServerConfig
	Translation TranslationConfig
	Azure       AzureOpenAIConfig
	OpenAI      OpenAIConfig
	Google      GoogleTranslateConfig
	DeepL       DeepLConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// TranslationConfig selects the backend and global dispatch settings.
type TranslationConfig struct {
	// Service is the backend identifier: azure, openai, google or deepl.
	Service string
	// RPS caps outbound calls per second; 0 disables the limiter.
	RPS float64
}

// AzureOpenAIConfig holds Azure OpenAI chat-completions configuration.
type AzureOpenAIConfig struct {
	APIKey     string
	Endpoint   string
	Deployment string
	APIVersion string
}

// OpenAIConfig holds OpenAI chat-completions configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// GoogleTranslateConfig holds Google Translate v2 configuration.
type GoogleTranslateConfig struct {
	APIKey  string
	BaseURL string
}

// DeepLConfig holds DeepL configuration.
type DeepLConfig struct {
	APIKey  string
	BaseURL string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	viper.SetEnvPrefix("")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("TRANSLATION_SERVICE", "azure")
	viper.SetDefault("TRANSLATION_RPS", 0)
	viper.SetDefault("AZURE_OPENAI_API_VERSION", "2024-02-15-preview")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GOOGLE_TRANSLATE_API_URL", "https://translation.googleapis.com/language/translate/v2")
	viper.SetDefault("DEEPL_API_URL", "https://api-free.deepl.com/v2/translate")

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
		},
		Translation: TranslationConfig{
			Service: viper.GetString("TRANSLATION_SERVICE"),
			RPS:     viper.GetFloat64("TRANSLATION_RPS"),
		},
		Azure: AzureOpenAIConfig{
			APIKey:     viper.GetString("AZURE_OPENAI_API_KEY"),
			Endpoint:   viper.GetString("AZURE_OPENAI_ENDPOINT"),
			Deployment: viper.GetString("AZURE_OPENAI_DEPLOYMENT"),
			APIVersion: viper.GetString("AZURE_OPENAI_API_VERSION"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("OPENAI_API_KEY"),
			Model:   viper.GetString("OPENAI_MODEL"),
			BaseURL: viper.GetString("OPENAI_BASE_URL"),
		},
		Google: GoogleTranslateConfig{
			APIKey:  viper.GetString("GOOGLE_TRANSLATE_API_KEY"),
			BaseURL: viper.GetString("GOOGLE_TRANSLATE_API_URL"),
		},
		DeepL: DeepLConfig{
			APIKey:  viper.GetString("DEEPL_API_KEY"),
			BaseURL: viper.GetString("DEEPL_API_URL"),
		},
	}

	return cfg, nil
}
