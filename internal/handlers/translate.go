// Package handlers contains the gin handlers for the translation
// gateway: the translate dispatch endpoint and the locale catalog.
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/locale"
	"translategw/internal/models"
	"translategw/internal/translate"
)

// ProviderFactory builds the backend adapter for a request. Injected so
// tests can substitute a stub backend.
type ProviderFactory func(cfg *config.Config, logger *zap.Logger) (translate.Provider, error)

// TranslateHandler handles translation dispatch requests.
type TranslateHandler struct {
	cfg     *config.Config
	catalog locale.Catalog
	factory ProviderFactory
	logger  *zap.Logger

	// The provider is built at most once: configuration is immutable
	// after startup, and the backend's rate limiter (with its ticker
	// goroutine) must be shared by every request, not rebuilt per call.
	once        sync.Once
	provider    translate.Provider
	providerErr error
}

// NewTranslateHandler creates a translate handler. A nil factory uses the
// real backend selector.
func NewTranslateHandler(cfg *config.Config, catalog locale.Catalog, factory ProviderFactory, logger *zap.Logger) *TranslateHandler {
	if factory == nil {
		factory = translate.NewProvider
	}
	return &TranslateHandler{
		cfg:     cfg,
		catalog: catalog,
		factory: factory,
		logger:  logger,
	}
}

// TranslateResponse is the success envelope.
type TranslateResponse struct {
	Status  int               `json:"status"`
	Results models.ResultsMap `json:"results"`
}

// Translate handles POST /api/v1/translate.
func (h *TranslateHandler) Translate(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.respondError(c, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	req, err := decodeRequest(body)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err)
		return
	}

	if err := validateRequest(req); err != nil {
		h.respondError(c, translate.HTTPStatus(err), err)
		return
	}

	provider, err := h.selectProvider()
	if err != nil {
		h.logger.Error("Failed to select translation backend", zap.Error(err))
		h.respondError(c, translate.HTTPStatus(err), err)
		return
	}

	results, err := translate.NewOrchestrator(provider, h.logger).Run(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("Translation failed",
			zap.String("backend", provider.Name()),
			zap.Error(err),
		)
		h.respondError(c, translate.HTTPStatus(err), err)
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{Status: http.StatusOK, Results: results})
}

// selectProvider builds the backend adapter on first use and reuses it
// for the lifetime of the handler. A construction error (missing or
// malformed configuration) is remembered and surfaced on every request.
func (h *TranslateHandler) selectProvider() (translate.Provider, error) {
	h.once.Do(func() {
		h.provider, h.providerErr = h.factory(h.cfg, h.logger)
	})
	return h.provider, h.providerErr
}

// Locales handles GET /api/v1/locales.
func (h *TranslateHandler) Locales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locales": h.catalog})
}

// respondError writes the error envelope. Partial results are never
// attached to an error response.
func (h *TranslateHandler) respondError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// decodeRequest parses the inbound body. The hosting runtime may deliver
// either the structured JSON object or a JSON string wrapping it; both
// shapes are accepted.
func decodeRequest(body []byte) (models.TranslationRequest, error) {
	var req models.TranslationRequest

	data := bytes.TrimSpace(body)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return req, &translate.ValidationError{Message: "request body is not valid JSON"}
		}
		data = []byte(raw)
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, &translate.ValidationError{Message: "request body is not valid JSON"}
	}
	return req, nil
}

// validateRequest rejects malformed requests before any backend is
// contacted.
func validateRequest(req models.TranslationRequest) error {
	if req.SourceLocale == "" {
		return &translate.ValidationError{Message: "sourceLocale is required"}
	}
	if !locale.Valid(req.SourceLocale) {
		return &translate.ValidationError{Message: fmt.Sprintf("sourceLocale %q is not a valid locale tag", req.SourceLocale)}
	}
	if len(req.TargetLocales) == 0 {
		return &translate.ValidationError{Message: "targetLocales must not be empty"}
	}
	for _, tag := range req.TargetLocales {
		if !locale.Valid(tag) {
			return &translate.ValidationError{Message: fmt.Sprintf("targetLocale %q is not a valid locale tag", tag)}
		}
	}
	if len(req.Items) == 0 {
		return &translate.ValidationError{Message: "items must not be empty"}
	}
	return nil
}
