package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edulizanay/voice-food-logger/utils"
)

func TestExtractItemsPlainJSON(t *testing.T) {
	t.Parallel()

	items, err := extractItems(`{"items": [{"food": "chicken breast", "quantity": "150 grams"}]}`)
	if err != nil {
		t.Fatalf("extract items: %v", err)
	}
	if len(items) != 1 || items[0].Food != "chicken breast" || items[0].Quantity != "150 grams" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestExtractItemsWrappedInProse(t *testing.T) {
	t.Parallel()

	content := "Here is the parsed result:\n{\"items\": [{\"food\": \"banana\", \"quantity\": \"one\"}]}\nLet me know if you need anything else."
	items, err := extractItems(content)
	if err != nil {
		t.Fatalf("extract items: %v", err)
	}
	if len(items) != 1 || items[0].Food != "banana" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestExtractItemsNoJSON(t *testing.T) {
	t.Parallel()

	if _, err := extractItems("sorry, I could not parse that"); err == nil {
		t.Fatalf("expected error for response without JSON")
	}
}

func TestGroqParserParsesChatResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", auth)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "choices": [{"message": {"content": "{\"items\": [{\"food\": \"chicken breast\", \"quantity\": \"150 grams\"}, {\"food\": \"rice\", \"quantity\": \"half a cup\"}]}"}}]
}`))
	}))
	defer ts.Close()

	t.Setenv("GROQ_BASE_URL", ts.URL)
	t.Setenv("GROQ_API_KEY", "test-key")

	p := NewGroqParser(defaultParsingPrompt, utils.NewNopLogger())
	items, err := p.Parse(context.Background(), "I ate 150 grams of chicken and half a cup of rice")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 || items[0].Food != "chicken breast" || items[1].Quantity != "half a cup" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestGroqParserRejectsEmptyTranscript(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	p := NewGroqParser(defaultParsingPrompt, utils.NewNopLogger())
	if _, err := p.Parse(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for empty transcript")
	}
}

func TestGroqParserSurfacesHTTPErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	t.Setenv("GROQ_BASE_URL", ts.URL)
	t.Setenv("GROQ_API_KEY", "test-key")

	p := NewGroqParser(defaultParsingPrompt, utils.NewNopLogger())
	if _, err := p.Parse(context.Background(), "two eggs"); err == nil {
		t.Fatalf("expected error for 429 response")
	}
}

func TestLoadParsingPromptFallsBack(t *testing.T) {
	t.Parallel()

	prompt, err := LoadParsingPrompt("does/not/exist.yaml")
	if err != nil {
		t.Fatalf("load prompt: %v", err)
	}
	if prompt != defaultParsingPrompt {
		t.Fatalf("expected built-in prompt fallback, got %q", prompt)
	}
}
