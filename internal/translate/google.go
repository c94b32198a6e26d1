package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/locale"
	"translategw/internal/models"
)

// GoogleProvider translates one message at a time through the Google
// Translate v2 API. Any call failure is fatal for the locale being
// processed.
type GoogleProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	limiter *rateLimiter
}

// NewGoogleProvider creates a Google Translate provider.
func NewGoogleProvider(cfg config.GoogleTranslateConfig, rps float64, logger *zap.Logger) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logger,
		limiter: newRateLimiter(rps),
	}
}

// Name implements Provider.
func (p *GoogleProvider) Name() string {
	return "google"
}

// TranslateBatch implements Provider by translating each message of each
// item individually.
func (p *GoogleProvider) TranslateBatch(ctx context.Context, sourceLocale, targetLocale string, items []models.TranslationItem) ([]models.TranslationItem, error) {
	source := locale.LanguageCode(sourceLocale)
	target := locale.LanguageCode(targetLocale)

	translated := make([]models.TranslationItem, 0, len(items))
	for _, item := range items {
		messages := make([]models.TranslationMessage, 0, len(item.Messages))
		for _, msg := range item.Messages {
			text, err := p.translateText(ctx, msg.Value, source, target)
			if err != nil {
				return nil, err
			}
			messages = append(messages, models.TranslationMessage{ID: msg.ID, Value: text})
		}
		translated = append(translated, models.TranslationItem{ID: item.ID, Messages: messages})
	}

	return translated, nil
}

// translateText performs one Translate v2 call.
func (p *GoogleProvider) translateText(ctx context.Context, text, source, target string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("translation throttled: %w", err)
	}

	reqBody := map[string]interface{}{
		"q":      []string{text},
		"source": source,
		"target": target,
		"format": "text",
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := p.baseURL + "?key=" + url.QueryEscape(p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Google Translate API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Google Translate API returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var apiResp struct {
		Data struct {
			Translations []struct {
				TranslatedText string `json:"translatedText"`
			} `json:"translations"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode Google Translate response: %w", ErrInvalidJSON)
	}
	if len(apiResp.Data.Translations) == 0 {
		return "", fmt.Errorf("no translations returned: %w", ErrInvalidResponse)
	}

	return apiResp.Data.Translations[0].TranslatedText, nil
}
