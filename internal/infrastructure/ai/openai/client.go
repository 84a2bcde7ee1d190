// Package openai provides the chat-completions client used to organize a
// flattened ingredient list into grocery store sections. It speaks the
// OpenAI wire format, which also covers Ollama and other compatible local
// endpoints via the configured base URL.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mirepoix/v1/internal/infrastructure/config"
	"github.com/mirepoix/v1/internal/ports/outbound"
)

// Client implements the AIService interface using the chat-completions API
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	logger      *zap.Logger
}

// NewClient creates a new chat-completions client
func NewClient(cfg *config.Config, logger *zap.Logger) outbound.AIService {
	return &Client{
		apiKey:      cfg.AI.APIKey,
		baseURL:     strings.TrimRight(cfg.AI.BaseURL, "/"),
		model:       cfg.AI.Model,
		maxTokens:   cfg.AI.MaxTokens,
		temperature: cfg.AI.Temperature,
		client: &http.Client{
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		},
		logger: logger.Named("openai-client"),
	}
}

// Chat-completions wire structures
type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

const systemPrompt = `You are a grocery shopping assistant. You receive a flat list of recipe ingredients and group them by grocery store section.

CRITICAL: You must respond with ONLY a valid JSON array in the exact format shown below. Do not include any explanatory text, markdown formatting, or other content outside the JSON.

Required JSON format:
[
  {
    "name": "ingredient name",
    "quantity": "2",
    "unit": "cup",
    "category": "Produce"
  }
]

Use these sections: Produce, Dairy, Meat & Seafood, Bakery, Pantry, Frozen, Beverages, Other. Keep every input item exactly once with its quantity and unit unchanged.`

// OrganizeGroceries sends the flattened ingredient text to the model and
// parses the sectioned items from its response. A single attempt; callers
// fall back to local categorization on error.
func (c *Client) OrganizeGroceries(ctx context.Context, flattened string) ([]outbound.OrganizedItem, error) {
	response, err := c.call(ctx, systemPrompt, "Organize these groceries: "+flattened)
	if err != nil {
		return nil, err
	}

	items, err := parseOrganizedItems(response)
	if err != nil {
		c.logger.Error("Failed to parse AI response", zap.Error(err))
		return nil, err
	}

	return items, nil
}

// call makes the chat-completions API request
func (c *Client) call(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Info("AI call successful",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
		zap.Int("total_tokens", chatResp.Usage.TotalTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}

// parseOrganizedItems extracts the JSON array from the model output.
// Models sometimes wrap the payload in markdown fences or prose, so the
// array is located between the outermost brackets before unmarshalling.
func parseOrganizedItems(response string) ([]outbound.OrganizedItem, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON array found in response")
	}

	var items []outbound.OrganizedItem
	if err := json.Unmarshal([]byte(response[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("response contained no items")
	}

	return items, nil
}
