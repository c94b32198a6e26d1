package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/models"
)

// AzureProvider translates whole item batches through an Azure OpenAI
// chat-completions deployment. Authentication is the api-key header; the
// deployment is addressed in the URL.
type AzureProvider struct {
	endpoint   string
	deployment string
	apiVersion string
	apiKey     string
	client     *http.Client
	logger     *zap.Logger
	limiter    *rateLimiter
}

// NewAzureProvider creates an Azure OpenAI provider. The endpoint must be
// a valid absolute URL.
func NewAzureProvider(cfg config.AzureOpenAIConfig, rps float64, logger *zap.Logger) (*AzureProvider, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil || !parsed.IsAbs() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("AZURE_OPENAI_ENDPOINT %q is not a valid URL", cfg.Endpoint)}
	}

	return &AzureProvider{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		apiKey:     cfg.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logger,
		limiter: newRateLimiter(rps),
	}, nil
}

// Name implements Provider.
func (p *AzureProvider) Name() string {
	return "azure"
}

// TranslateBatch implements Provider. The whole item set is one outbound
// call; any call or parse failure is fatal for the locale.
func (p *AzureProvider) TranslateBatch(ctx context.Context, sourceLocale, targetLocale string, items []models.TranslationItem) ([]models.TranslationItem, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("translation throttled: %w", err)
	}

	payload, err := buildChatPayload("", sourceLocale, targetLocale, items)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		p.endpoint, p.deployment, url.QueryEscape(p.apiVersion))

	content, err := completeChat(ctx, p.client, apiURL, func(req *http.Request) {
		req.Header.Set("api-key", p.apiKey)
	}, payload)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Azure OpenAI batch translated",
		zap.String("target_locale", targetLocale),
		zap.Int("items", len(items)),
	)

	return parseChatBatch(content, items)
}
