package translate

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"translategw/internal/models"
)

// Orchestrator runs one translation request against a selected provider,
// aggregating per-locale outcomes. Each target locale ends in exactly one
// of three states: completed (entry in the results map), skipped (absent,
// backend cannot serve it) or failed (the whole request aborts with the
// provider's error).
type Orchestrator struct {
	provider Provider
	logger   *zap.Logger
}

// NewOrchestrator creates an orchestrator bound to one provider.
func NewOrchestrator(provider Provider, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		logger:   logger,
	}
}

// Run translates req.Items into every target locale in caller order.
// A skip continues with the remaining locales; any other provider error
// aborts immediately, so completed results and an error never coexist.
func (o *Orchestrator) Run(ctx context.Context, req models.TranslationRequest) (models.ResultsMap, error) {
	results := make(models.ResultsMap, len(req.TargetLocales))

	for _, target := range req.TargetLocales {
		items, err := o.provider.TranslateBatch(ctx, req.SourceLocale, target, req.Items)
		if err != nil {
			if errors.Is(err, ErrLocaleNotSupported) {
				o.logger.Info("Skipping unsupported locale",
					zap.String("backend", o.provider.Name()),
					zap.String("target_locale", target),
				)
				continue
			}
			return nil, &BackendCallError{Provider: o.provider.Name(), Locale: target, Err: err}
		}
		if len(items) == 0 {
			// Zero survivable items is a skip, never an empty entry.
			o.logger.Info("No items survived translation, skipping locale",
				zap.String("backend", o.provider.Name()),
				zap.String("target_locale", target),
			)
			continue
		}

		results[target] = items
		o.logger.Info("Locale translated",
			zap.String("backend", o.provider.Name()),
			zap.String("target_locale", target),
			zap.Int("items", len(items)),
		)
	}

	return results, nil
}
