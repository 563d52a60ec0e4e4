package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/edulizanay/voice-food-logger/utils"
)

// Transcriber converts an uploaded audio blob into a transcript string. The
// pipeline only depends on this interface; the Groq Whisper implementation
// below is the production one.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type GroqTranscriber struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	log     *utils.Logger
}

func NewGroqTranscriber(log *utils.Logger) *GroqTranscriber {
	baseURL := os.Getenv("GROQ_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai"
	}
	model := os.Getenv("GROQ_WHISPER_MODEL")
	if model == "" {
		model = "whisper-large-v3-turbo"
	}
	return &GroqTranscriber{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  os.Getenv("GROQ_API_KEY"),
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log.With("service", "GroqTranscriber"),
	}
}

func (t *GroqTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}
	_ = mw.WriteField("model", t.model)
	_ = mw.WriteField("response_format", "text")
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build transcription request: %w", err)
	}

	payload := body.Bytes()
	contentType := mw.FormDataContentType()

	// the provider rate-limits aggressively; transient failures get a couple
	// of retries before the upload is reported as failed
	var lastErr error
	for attempt := 0; attempt < transcribeAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			t.baseURL+"/v1/audio/transcriptions", bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("create transcription request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", "Bearer "+t.apiKey)

		transcript, retryable, err := t.doTranscribe(req)
		if err == nil {
			t.log.Debug("transcribed audio", "bytes", len(audio), "chars", len(transcript))
			return transcript, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		t.log.Warn("transcription attempt failed", "attempt", attempt+1, "error", err)
	}
	return "", lastErr
}

const (
	transcribeAttempts = 3
	retryBackoff       = 500 * time.Millisecond
)

func (t *GroqTranscriber) doTranscribe(req *http.Request) (string, bool, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("execute transcription request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("transcription request failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return strings.TrimSpace(string(raw)), false, nil
}
