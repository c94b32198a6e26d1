package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"translategw/internal/models"
)

// chatSystemPrompt is the fixed instruction for the chat-completion
// backends. The contract: translate only the message values, keep every
// identifier unchanged, keep the marketing tone, emit nothing beyond the
// requested JSON.
const chatSystemPrompt = "You are a professional translation engine for marketing copy. " +
	"Translate only the \"value\" field of each message from the source locale to the target locale. " +
	"Preserve every \"id\" field exactly as given; never rename, reorder, add or remove identifiers. " +
	"Preserve the marketing tone of the original text. " +
	"Respond with the requested JSON object only, with no commentary or extra text."

// chatMessage is one entry of the chat payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatBatch is the user payload and, mirrored, the shape the model must
// answer with.
type chatBatch struct {
	SourceLocale string                   `json:"sourceLocale,omitempty"`
	TargetLocale string                   `json:"targetLocale"`
	Items        []models.TranslationItem `json:"items"`
}

// chatBatchSchema is the strict output schema sent with every chat
// request: an object {targetLocale, items:[{id, messages:[{id, value}]}]}
// with all fields required and no additional properties at any level.
func chatBatchSchema() map[string]interface{} {
	messageSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id":    map[string]interface{}{"type": "string"},
			"value": map[string]interface{}{"type": "string"},
		},
		"required":             []string{"id", "value"},
		"additionalProperties": false,
	}
	itemSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{"type": "string"},
			"messages": map[string]interface{}{
				"type":  "array",
				"items": messageSchema,
			},
		},
		"required":             []string{"id", "messages"},
		"additionalProperties": false,
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"targetLocale": map[string]interface{}{"type": "string"},
			"items": map[string]interface{}{
				"type":  "array",
				"items": itemSchema,
			},
		},
		"required":             []string{"targetLocale", "items"},
		"additionalProperties": false,
	}
}

// buildChatPayload assembles the outbound chat-completions body. Sampling
// is pinned deterministic: temperature 0, top_p 1, no penalties. model is
// omitted when empty (Azure addresses the deployment in the URL).
func buildChatPayload(model, sourceLocale, targetLocale string, items []models.TranslationItem) ([]byte, error) {
	userContent, err := json.Marshal(chatBatch{
		SourceLocale: sourceLocale,
		TargetLocale: targetLocale,
		Items:        items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat input: %w", err)
	}

	body := map[string]interface{}{
		"messages": []chatMessage{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: string(userContent)},
		},
		"temperature":       0,
		"top_p":             1,
		"frequency_penalty": 0,
		"presence_penalty":  0,
		"response_format": map[string]interface{}{
			"type": "json_schema",
			"json_schema": map[string]interface{}{
				"name":   "translation_batch",
				"strict": true,
				"schema": chatBatchSchema(),
			},
		},
	}
	if model != "" {
		body["model"] = model
	}

	return json.Marshal(body)
}

// completeChat posts payload to url and returns the content of the first
// choice. authorize stamps the backend-specific credential header.
func completeChat(ctx context.Context, client *http.Client, url string, authorize func(*http.Request), payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	authorize(req)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat completions API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat completions API returned status %d: %s", resp.StatusCode, truncate(string(body), 300))
	}

	var apiResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	// An unreadable envelope is an ordinary call failure; ErrInvalidJSON
	// is reserved for model content that fails schema parsing.
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode chat completions response: %w", err)
	}
	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return apiResp.Choices[0].Message.Content, nil
}

// parseChatBatch validates the model content against the request it
// answers. Identifiers are never taken from the backend: the result is
// rebuilt from the input items with only the translated values applied,
// and any count or identifier mismatch is a format error.
func parseChatBatch(content string, in []models.TranslationItem) ([]models.TranslationItem, error) {
	var out chatBatch
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, ErrInvalidJSON
	}
	if out.TargetLocale == "" || out.Items == nil {
		return nil, fmt.Errorf("missing targetLocale or items: %w", ErrInvalidResponseFormat)
	}
	if len(out.Items) != len(in) {
		return nil, fmt.Errorf("expected %d items, got %d: %w", len(in), len(out.Items), ErrInvalidResponseFormat)
	}

	translated := make([]models.TranslationItem, 0, len(in))
	for i, want := range in {
		got := out.Items[i]
		if got.ID != want.ID {
			return nil, fmt.Errorf("item %d: expected id %q, got %q: %w", i, want.ID, got.ID, ErrInvalidResponseFormat)
		}
		if len(got.Messages) != len(want.Messages) {
			return nil, fmt.Errorf("item %q: expected %d messages, got %d: %w", want.ID, len(want.Messages), len(got.Messages), ErrInvalidResponseFormat)
		}
		messages := make([]models.TranslationMessage, 0, len(want.Messages))
		for j, wantMsg := range want.Messages {
			gotMsg := got.Messages[j]
			if gotMsg.ID != wantMsg.ID {
				return nil, fmt.Errorf("item %q message %d: expected id %q, got %q: %w", want.ID, j, wantMsg.ID, gotMsg.ID, ErrInvalidResponseFormat)
			}
			messages = append(messages, models.TranslationMessage{ID: wantMsg.ID, Value: gotMsg.Value})
		}
		translated = append(translated, models.TranslationItem{ID: want.ID, Messages: messages})
	}

	return translated, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
