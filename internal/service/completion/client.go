package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ChatMessage is one entry in the upstream messages array.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body posted to the chat completions endpoint.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatResponse mirrors the subset of the upstream response the relay reads.
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// apiErrorResponse is the upstream error envelope.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UpstreamError reports a failed exchange with the completion service.
// Message carries the upstream error text when the body could be parsed,
// otherwise a generic description.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error: %s", e.Message)
}

// Client performs one single-shot completion exchange. Implementations must
// not retry; a failed call is terminal for that submission.
type Client interface {
	Complete(ctx context.Context, credential string, messages []ChatMessage) (string, error)
}

// HTTPClient talks to an OpenAI-compatible chat completions endpoint.
type HTTPClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewHTTPClient builds a client for the given endpoint and model. The
// timeout applies to the whole exchange; there is no retry or backoff.
func NewHTTPClient(baseURL, model string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete posts the messages and returns the generated reply text. The
// credential is supplied per call; validity is only discovered upstream.
func (c *HTTPClient) Complete(ctx context.Context, credential string, messages []ChatMessage) (string, error) {
	payload, err := json.Marshal(ChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Message: "failed to read response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{Status: resp.StatusCode, Message: upstreamMessage(body)}
	}

	var parsed ChatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", &UpstreamError{Status: resp.StatusCode, Message: "response contained no completion"}
	}

	return parsed.Choices[0].Message.Content, nil
}

// upstreamMessage extracts error.message from an error body, falling back
// to a generic description when the shape does not match.
func upstreamMessage(body []byte) string {
	var parsed apiErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return "completion request failed"
}
