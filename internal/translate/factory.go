package translate

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"translategw/internal/config"
)

// Service identifiers accepted in TRANSLATION_SERVICE.
const (
	ServiceAzure  = "azure"
	ServiceOpenAI = "openai"
	ServiceGoogle = "google"
	ServiceDeepL  = "deepl"
)

// NewProvider maps the configured backend identifier to a fully
// constructed Provider. The identifier is case-insensitive and defaults
// to azure. Every configuration key the chosen backend needs is checked
// before the provider is built; all missing keys are reported together.
func NewProvider(cfg *config.Config, logger *zap.Logger) (Provider, error) {
	service := strings.ToLower(strings.TrimSpace(cfg.Translation.Service))
	if service == "" {
		service = ServiceAzure
	}

	switch service {
	case ServiceAzure:
		if missing := missingKeys(map[string]string{
			"AZURE_OPENAI_API_KEY":    cfg.Azure.APIKey,
			"AZURE_OPENAI_ENDPOINT":   cfg.Azure.Endpoint,
			"AZURE_OPENAI_DEPLOYMENT": cfg.Azure.Deployment,
		}); len(missing) > 0 {
			return nil, &ConfigurationError{Missing: missing}
		}
		logger.Info("Creating Azure OpenAI translator",
			zap.String("endpoint", cfg.Azure.Endpoint),
			zap.String("deployment", cfg.Azure.Deployment),
		)
		return NewAzureProvider(cfg.Azure, cfg.Translation.RPS, logger)

	case ServiceOpenAI:
		if missing := missingKeys(map[string]string{
			"OPENAI_API_KEY": cfg.OpenAI.APIKey,
		}); len(missing) > 0 {
			return nil, &ConfigurationError{Missing: missing}
		}
		logger.Info("Creating OpenAI translator",
			zap.String("model", cfg.OpenAI.Model),
			zap.String("base_url", cfg.OpenAI.BaseURL),
		)
		return NewOpenAIProvider(cfg.OpenAI, cfg.Translation.RPS, logger), nil

	case ServiceGoogle:
		if missing := missingKeys(map[string]string{
			"GOOGLE_TRANSLATE_API_KEY": cfg.Google.APIKey,
		}); len(missing) > 0 {
			return nil, &ConfigurationError{Missing: missing}
		}
		logger.Info("Creating Google Translate translator",
			zap.String("base_url", cfg.Google.BaseURL),
		)
		return NewGoogleProvider(cfg.Google, cfg.Translation.RPS, logger), nil

	case ServiceDeepL:
		if missing := missingKeys(map[string]string{
			"DEEPL_API_KEY": cfg.DeepL.APIKey,
		}); len(missing) > 0 {
			return nil, &ConfigurationError{Missing: missing}
		}
		logger.Info("Creating DeepL translator",
			zap.String("base_url", cfg.DeepL.BaseURL),
		)
		return NewDeepLProvider(cfg.DeepL, cfg.Translation.RPS, logger), nil

	default:
		return nil, &UnsupportedBackendError{Service: cfg.Translation.Service}
	}
}

// missingKeys returns the sorted names of keys whose values are empty.
func missingKeys(keys map[string]string) []string {
	var missing []string
	for key, value := range keys {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
