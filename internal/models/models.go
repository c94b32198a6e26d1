// Package models contains the request-scoped types exchanged with the
// translation gateway. Nothing here is persisted; every value lives for
// the duration of one request.
package models

// TranslationMessage is a single translatable string. ID is assigned by
// the caller and is carried through translation verbatim.
type TranslationMessage struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// TranslationItem groups the messages that belong to one logical unit
// (a product card, a campaign block). ID is unique within a request.
type TranslationItem struct {
	ID       string               `json:"id"`
	Messages []TranslationMessage `json:"messages"`
}

// TranslationRequest is the inbound payload: translate every item from
// SourceLocale into each of TargetLocales.
type TranslationRequest struct {
	SourceLocale  string            `json:"sourceLocale"`
	TargetLocales []string          `json:"targetLocales"`
	Items         []TranslationItem `json:"items"`
}

// ResultsMap maps a target locale to its translated items. A locale gets
// an entry only when at least one translated item survived; a locale the
// selected backend cannot serve is absent, not present-and-empty.
type ResultsMap map[string][]TranslationItem
