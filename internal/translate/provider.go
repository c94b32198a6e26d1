// Package translate dispatches translation batches to one of several
// heterogeneous backends and normalizes their request and response
// shapes into the common item structure.
package translate

import (
	"context"

	"translategw/internal/models"
)

// Provider is the uniform contract every backend adapter satisfies.
// Single-text backends satisfy TranslateBatch by iterating the messages
// of each item; batch-capable backends send the whole item set in one
// call.
type Provider interface {
	// Name returns the backend identifier used in logs and errors.
	Name() string

	// TranslateBatch translates items from sourceLocale into
	// targetLocale. Returning an error wrapping ErrLocaleNotSupported
	// marks the locale as skipped rather than failed.
	TranslateBatch(ctx context.Context, sourceLocale, targetLocale string, items []models.TranslationItem) ([]models.TranslationItem, error)
}
