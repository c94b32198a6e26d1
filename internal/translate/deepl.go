package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/locale"
	"translategw/internal/models"
)

// deeplTargetLanguages enumerates the target language codes DeepL
// serves. A target outside this set is skipped, not failed; the check is
// structural so skip decisions never depend on backend error wording.
var deeplTargetLanguages = map[string]bool{
	"AR": true, "BG": true, "CS": true, "DA": true, "DE": true,
	"EL": true, "EN": true, "ES": true, "ET": true, "FI": true,
	"FR": true, "HU": true, "ID": true, "IT": true, "JA": true,
	"KO": true, "LT": true, "LV": true, "NB": true, "NL": true,
	"PL": true, "PT": true, "RO": true, "RU": true, "SK": true,
	"SL": true, "SV": true, "TR": true, "UK": true, "ZH": true,
}

// DeepLProvider translates one message at a time through the DeepL API.
// Unlike the other backends it serves a restricted locale set: an
// unsupported target locale is a skip for that locale, and an
// unsupported-language condition on a single call drops only that
// message.
type DeepLProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	limiter *rateLimiter
}

// NewDeepLProvider creates a DeepL provider.
func NewDeepLProvider(cfg config.DeepLConfig, rps float64, logger *zap.Logger) *DeepLProvider {
	return &DeepLProvider{
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
func (p *DeepLProvider) Name() string {
	return "deepl"
}

// TranslateBatch implements Provider. An item contributes only the
// messages that translated; if no message of any item survives, the
// whole locale is reported as a skip.
func (p *DeepLProvider) TranslateBatch(ctx context.Context, sourceLocale, targetLocale string, items []models.TranslationItem) ([]models.TranslationItem, error) {
	source := locale.UpperLanguageCode(sourceLocale)
	target := locale.UpperLanguageCode(targetLocale)

	if !deeplTargetLanguages[target] {
		return nil, fmt.Errorf("deepl target %s: %w", targetLocale, ErrLocaleNotSupported)
	}

	translated := make([]models.TranslationItem, 0, len(items))
	for _, item := range items {
		messages := make([]models.TranslationMessage, 0, len(item.Messages))
		for _, msg := range item.Messages {
			text, err := p.translateText(ctx, msg.Value, source, target)
			if err != nil {
				if errors.Is(err, ErrLocaleNotSupported) {
					p.logger.Info("DeepL cannot translate message, skipping",
						zap.String("target_locale", targetLocale),
						zap.String("item_id", item.ID),
						zap.String("message_id", msg.ID),
					)
					continue
				}
				return nil, err
			}
			messages = append(messages, models.TranslationMessage{ID: msg.ID, Value: text})
		}
		if len(messages) > 0 {
			translated = append(translated, models.TranslationItem{ID: item.ID, Messages: messages})
		}
	}

	if len(translated) == 0 {
		return nil, fmt.Errorf("deepl produced no translations for %s: %w", targetLocale, ErrLocaleNotSupported)
	}

	return translated, nil
}

// translateText performs one DeepL call.
func (p *DeepLProvider) translateText(ctx context.Context, text, source, target string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("translation throttled: %w", err)
	}

	reqBody := map[string]interface{}{
		"text":        []string{text},
		"source_lang": source,
		"target_lang": target,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "DeepL-Auth-Key "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call DeepL API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		// DeepL reports unsupported language pairs as a 400 whose JSON
		// message names the offending parameter. There is no numeric
		// error code to key on.
		var apiErr struct {
			Message string `json:"message"`
		}
		body, _ := io.ReadAll(resp.Body)
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil &&
			(strings.Contains(apiErr.Message, "target_lang") || strings.Contains(apiErr.Message, "source_lang")) {
			return "", fmt.Errorf("deepl rejected language pair %s-%s: %w", source, target, ErrLocaleNotSupported)
		}
		return "", fmt.Errorf("DeepL API returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("DeepL API returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var apiResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode DeepL response: %w", ErrInvalidJSON)
	}
	if len(apiResp.Translations) == 0 {
		return "", fmt.Errorf("no translations returned: %w", ErrInvalidResponse)
	}

	return apiResp.Translations[0].Text, nil
}
