package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OllamaAdvisor generates text by calling an OpenAI-compatible LLM endpoint
// (Ollama, LM Studio, vLLM, etc.).
type OllamaAdvisor struct {
	url    string       // e.g. "http://localhost:11434"
	model  string       // e.g. "qwen3:4b"
	client *http.Client // reused across calls
}

// Compile-time check: *OllamaAdvisor satisfies the Advisor interface.
var _ Advisor = (*OllamaAdvisor)(nil)

// GenerateError is returned when generation fails so the caller can
// distinguish between "LLM produced nothing usable" and "LLM was unreachable."
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

// NewOllamaAdvisor creates an advisor that calls the given LLM endpoint.
func NewOllamaAdvisor(url, model string) *OllamaAdvisor {
	return &OllamaAdvisor{
		url:   url,
		model: model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Advisor interface
// ============================================================================

const maxRetries = 2

// GenerateText sends the prompt to the LLM and returns its completion with
// any chain-of-thought markup stripped.
//
// It retries once on failure (small models sometimes need a second try).
func (a *OllamaAdvisor) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err := a.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		text := stripReasoning(result)
		if text == "" {
			lastErr = &GenerateError{Reason: "empty response after removing reasoning"}
			continue
		}

		return text, nil
	}

	return "", &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (a *OllamaAdvisor) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: a.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// Text processing helpers
// ============================================================================

// stripReasoning removes a leading <think>...</think> block that some models
// emit even when the prompt asks them not to, then trims whitespace.
func stripReasoning(text string) string {
	if idx := strings.LastIndex(text, "</think>"); idx != -1 {
		text = text[idx+len("</think>"):]
	}
	return strings.TrimSpace(text)
}
