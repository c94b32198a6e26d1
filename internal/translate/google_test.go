package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"translategw/internal/config"
	"translategw/internal/models"
)

func googleProviderFor(srv *httptest.Server) *GoogleProvider {
	return NewGoogleProvider(config.GoogleTranslateConfig{
		APIKey:  "google-key",
		BaseURL: srv.URL,
	}, 0, zap.NewNop())
}

func TestGoogleTranslateBatchSuccess(t *testing.T) {
	var gotKey string
	var gotReq struct {
		Q      []string `json:"q"`
		Source string   `json:"source"`
		Target string   `json:"target"`
		Format string   `json:"format"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		json.NewDecoder(r.Body).Decode(&gotReq)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"translations": []map[string]string{{"translatedText": "Achetez maintenant"}},
			},
		})
	}))
	defer srv.Close()

	got, err := googleProviderFor(srv).TranslateBatch(context.Background(), "en-US", "fr-FR", sampleItems())
	if err != nil {
		t.Fatalf("TranslateBatch returned error: %v", err)
	}

	if gotKey != "google-key" {
		t.Errorf("key query param = %q", gotKey)
	}
	if gotReq.Source != "en" || gotReq.Target != "fr" {
		t.Errorf("language codes = %s/%s, want en/fr", gotReq.Source, gotReq.Target)
	}
	if gotReq.Format != "text" {
		t.Errorf("format = %q, want text", gotReq.Format)
	}
	if got[0].Messages[0].Value != "Achetez maintenant" {
		t.Errorf("translated value = %q", got[0].Messages[0].Value)
	}
	if got[0].ID != "1" || got[0].Messages[0].ID != "m1" {
		t.Errorf("identifiers not preserved: %+v", got)
	}
}

func TestGoogleAnyFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := googleProviderFor(srv).TranslateBatch(context.Background(), "en-US", "th-TH", sampleItems())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrLocaleNotSupported) {
		t.Fatal("google failures must never be treated as skips")
	}
}

func TestGoogleEmptyTranslationsIsInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"translations": []interface{}{}},
		})
	}))
	defer srv.Close()

	_, err := googleProviderFor(srv).TranslateBatch(context.Background(), "en-US", "fr-FR", sampleItems())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGoogleTranslatesEveryMessage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"translations": []map[string]string{{"translatedText": "ok"}},
			},
		})
	}))
	defer srv.Close()

	items := []models.TranslationItem{
		{ID: "1", Messages: []models.TranslationMessage{{ID: "m1", Value: "a"}, {ID: "m2", Value: "b"}}},
		{ID: "2", Messages: []models.TranslationMessage{{ID: "m3", Value: "c"}}},
	}

	got, err := googleProviderFor(srv).TranslateBatch(context.Background(), "en-US", "de-DE", items)
	if err != nil {
		t.Fatalf("TranslateBatch returned error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls (one per message), got %d", calls)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 items, got %d", len(got))
	}
}
