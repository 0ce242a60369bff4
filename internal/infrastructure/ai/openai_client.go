package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phetoho/backend/internal/domain/chat"
	"github.com/phetoho/backend/internal/domain/report"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 1 * 1024 * 1024 // 1MB max response

const chatSystemPrompt = `You are a helpful AI assistant for Phetoho, an AI-powered business portal.
You help customers with:
- Product information and recommendations
- Order tracking and status updates
- General inquiries about products and services
- Technical support for using the portal

Be friendly, professional, and helpful. If you cannot help with something,
politely explain and suggest contacting human support.`

const insightSystemPrompt = "You are a business intelligence AI analyst."

// Config holds the OpenAI-compatible API settings
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("openai: base URL is required")
	}
	if c.Model == "" {
		return fmt.Errorf("openai: model is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("openai: timeout must be positive")
	}
	return nil
}

// OpenAIClient talks to an OpenAI-compatible chat completions API. It backs
// both the customer chat assistant and the business insight generator.
type OpenAIClient struct {
	config     *Config
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI client with the given configuration
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &OpenAIClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ChatResponse generates a reply to a customer message
func (c *OpenAIClient) ChatResponse(ctx context.Context, message string, userCtx *chat.UserContext) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: chatSystemPrompt},
	}
	if userCtx != nil {
		messages = append(messages, chatMessage{
			Role:    "system",
			Content: fmt.Sprintf("Additional context: the customer has %d recent orders.", userCtx.RecentOrders),
		})
	}
	messages = append(messages, chatMessage{Role: "user", Content: message})

	return c.complete(ctx, completionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
}

// GenerateInsights asks the model for actionable business recommendations
// based on the snapshot
func (c *OpenAIClient) GenerateInsights(ctx context.Context, snapshot report.BusinessSnapshot) ([]report.Insight, error) {
	prompt := fmt.Sprintf(`Based on the following business data, provide actionable insights:

Orders: %d
Revenue: $%s
Customer Count: %d
Top Products: %s

Please provide 3-5 specific, actionable insights as a JSON array of objects with:
- type: (opportunity, warning, or info)
- title: brief title
- description: detailed explanation
- confidence: confidence score (0-100)
- action: suggested action (optional)

Respond with the JSON array only.`,
		snapshot.Orders,
		snapshot.Revenue.StringFixed(2),
		snapshot.Customers,
		strings.Join(snapshot.TopProducts, ", "))

	content, err := c.complete(ctx, completionRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: insightSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}

	return parseInsights(content)
}

// complete performs a chat completions request and returns the first choice
func (c *OpenAIClient) complete(ctx context.Context, reqBody completionRequest) (string, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("openai: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("openai: failed to parse response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("openai: %s: %s", completion.Error.Type, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: response contains no choices")
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai: response contains empty content")
	}
	return content, nil
}

type insightPayload struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	Action      string  `json:"action"`
}

// parseInsights decodes the model output, tolerating markdown fences and an
// {"insights": [...]} wrapper object
func parseInsights(content string) ([]report.Insight, error) {
	content = stripCodeFence(content)

	var payloads []insightPayload
	if err := json.Unmarshal([]byte(content), &payloads); err != nil {
		var wrapper struct {
			Insights []insightPayload `json:"insights"`
		}
		if err := json.Unmarshal([]byte(content), &wrapper); err != nil {
			return nil, fmt.Errorf("openai: failed to parse insights: %w", err)
		}
		payloads = wrapper.Insights
	}

	insights := make([]report.Insight, 0, len(payloads))
	for _, p := range payloads {
		if p.Title == "" {
			continue
		}
		confidence := p.Confidence
		// The prompt asks for 0-100; normalize to a 0-1 score
		if confidence > 1 {
			confidence = confidence / 100
		}
		insights = append(insights, report.Insight{
			Type:        p.Type,
			Title:       p.Title,
			Description: p.Description,
			Confidence:  confidence,
			Action:      p.Action,
		})
	}
	return insights, nil
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// Ensure OpenAIClient implements the outbound boundaries
var (
	_ chat.Assistant          = (*OpenAIClient)(nil)
	_ report.InsightGenerator = (*OpenAIClient)(nil)
)
