package translate

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/models"
)

// OpenAIProvider translates whole item batches through the OpenAI
// chat-completions API. Same protocol as the Azure provider, bearer-token
// credential model.
type OpenAIProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	limiter *rateLimiter
}

// NewOpenAIProvider creates an OpenAI provider.
func NewOpenAIProvider(cfg config.OpenAIConfig, rps float64, logger *zap.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logger,
		limiter: newRateLimiter(rps),
	}
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// TranslateBatch implements Provider. The whole item set is one outbound
// call; any call or parse failure is fatal for the locale.
func (p *OpenAIProvider) TranslateBatch(ctx context.Context, sourceLocale, targetLocale string, items []models.TranslationItem) ([]models.TranslationItem, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("translation throttled: %w", err)
	}

	payload, err := buildChatPayload(p.model, sourceLocale, targetLocale, items)
	if err != nil {
		return nil, err
	}

	content, err := completeChat(ctx, p.client, p.baseURL+"/chat/completions", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}, payload)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("OpenAI batch translated",
		zap.String("target_locale", targetLocale),
		zap.Int("items", len(items)),
	)

	return parseChatBatch(content, items)
}
