package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alauddinGen-Z/SLA/internal/common"
)

func candidateResponse(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse("[]")))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: ts.URL, Model: "gemini-1.5-flash"}, nil)

	got, err := c.Generate(context.Background(), "extract the rules")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "[]" {
		t.Errorf("Generate = %q, want %q", got, "[]")
	}

	if gotPath != "/v1beta/models/gemini-1.5-flash:generateContent" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("unexpected key %q", gotKey)
	}

	contents, ok := gotBody["contents"].([]any)
	if !ok || len(contents) != 1 {
		t.Fatalf("unexpected request body: %v", gotBody)
	}
	first := contents[0].(map[string]any)
	parts := first["parts"].([]any)
	text := parts[0].(map[string]any)["text"].(string)
	if text != "extract the rules" {
		t.Errorf("prompt not carried in request body: %q", text)
	}
}

func TestGenerateMissingAPIKey(t *testing.T) {
	c := NewClient(Config{}, nil)

	_, err := c.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error without API key")
	}
	if !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
	if !strings.Contains(common.UserMessage(err), "GEMINI_API_KEY") {
		t.Errorf("unexpected message: %q", common.UserMessage(err))
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, nil)

	_, err := c.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error on non-2xx upstream status")
	}
	if !errors.Is(err, common.ErrLLMUnavailable) {
		t.Errorf("expected LLM-unavailable error, got %v", err)
	}
}

func TestGenerateConnectionRefused(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, nil)

	_, err := c.Generate(context.Background(), "prompt")
	if !errors.Is(err, common.ErrLLMUnavailable) {
		t.Errorf("expected LLM-unavailable error, got %v", err)
	}
}

func TestGenerateNoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, nil)

	got, err := c.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("empty candidate list should not be an error: %v", err)
	}
	if got != "" {
		t.Errorf("Generate = %q, want empty string", got)
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": "oops"`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: ts.URL}, nil)

	_, err := c.Generate(context.Background(), "prompt")
	if !errors.Is(err, common.ErrLLMUnavailable) {
		t.Errorf("expected LLM-unavailable error, got %v", err)
	}
}
