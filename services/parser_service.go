package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/edulizanay/voice-food-logger/utils"

	"gopkg.in/yaml.v3"
)

// FoodParser turns a free-text transcript into (food, quantity) pairs. The
// production implementation calls the Groq chat-completions API with the
// prompt from prompts.yaml.
type FoodParser interface {
	Parse(ctx context.Context, transcript string) ([]ParsedFood, error)
}

type GroqParser struct {
	baseURL string
	apiKey  string
	model   string
	prompt  string
	client  *http.Client
	log     *utils.Logger
}

type promptsFile struct {
	FoodParsingPrompt string `yaml:"food_parsing_prompt"`
}

const defaultParsingPrompt = `You are a food logging assistant. Parse the following food description into JSON format. Return only valid JSON with this structure: {"items": [{"food": "name", "quantity": "amount"}]}`

// LoadParsingPrompt reads the parsing prompt from a YAML file, falling back
// to the built-in prompt when the file is absent.
func LoadParsingPrompt(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultParsingPrompt, nil
	}
	if err != nil {
		return "", fmt.Errorf("read prompts file: %w", err)
	}
	var f promptsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return "", fmt.Errorf("parse prompts file: %w", err)
	}
	if strings.TrimSpace(f.FoodParsingPrompt) == "" {
		return "", fmt.Errorf("prompts file %s has no food_parsing_prompt", path)
	}
	return f.FoodParsingPrompt, nil
}

func NewGroqParser(prompt string, log *utils.Logger) *GroqParser {
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai"
	}
	model := os.Getenv("GROQ_CHAT_MODEL")
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	return &GroqParser{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  os.Getenv("GROQ_API_KEY"),
		model:   model,
		prompt:  prompt,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With("service", "GroqParser"),
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type parsedItemsPayload struct {
	Items []ParsedFood `json:"items"`
}

func (p *GroqParser) Parse(ctx context.Context, transcript string) ([]ParsedFood, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, fmt.Errorf("empty food description")
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "user", Content: p.prompt + "\n\n" + transcript},
		},
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute parse request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read parse response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("parse request failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var cr chatCompletionResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("decode parse response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("parse response has no choices")
	}

	items, err := extractItems(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	p.log.Debug("parsed transcript", "items", len(items))
	return items, nil
}

// extractItems decodes the model output, tolerating JSON wrapped in prose by
// falling back to the outermost brace pair.
func extractItems(content string) ([]ParsedFood, error) {
	content = strings.TrimSpace(content)

	var payload parsedItemsPayload
	if err := json.Unmarshal([]byte(content), &payload); err == nil {
		return payload.Items, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("could not locate JSON in model response")
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("decode model response JSON: %w", err)
	}
	return payload.Items, nil
}
