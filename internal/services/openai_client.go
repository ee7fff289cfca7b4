package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultCompletionBaseURL = "https://api.openai.com/v1"

// CompletionClient talks to an OpenAI-compatible chat-completions endpoint.
type CompletionClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewCompletionClient(httpClient *http.Client, apiKey, baseURL, model string) *CompletionClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultCompletionBaseURL
	}
	return &CompletionClient{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
	}
}

// Complete sends the ordered messages and returns the single completion
// string. A missing API key is a configuration error.
func (c *CompletionClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	if c == nil {
		return "", errors.New("completion client is not configured")
	}
	if strings.TrimSpace(c.apiKey) == "" {
		return "", errors.New("completion api key is empty")
	}

	payload := map[string]interface{}{
		"model":    c.model,
		"messages": messages,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.baseURL, "/"))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("completion error: status %d: %s", resp.StatusCode, string(data))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
