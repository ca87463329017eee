package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deskhound/deskhound/pkg/domain/model/errs"
	"github.com/deskhound/deskhound/pkg/utils/logging"
	"github.com/deskhound/deskhound/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// systemPrompt mandates the answer shape and tone. Code fences are forbidden
// so the content field is parseable as raw JSON.
const systemPrompt = `You are a helpdesk assistant. Given a support question, respond with a JSON object containing exactly two fields: "summary" (a short, plain title for the question, at most 10 words) and "response" (a friendly, concise first answer the support team could send as-is). Keep a warm, professional tone. Respond with raw JSON only: no markdown, no code fences, no commentary.`

// Result is the two-field structured output of one summarization call.
type Result struct {
	Summary  string `json:"summary"`
	Response string `json:"response"`
}

// Client performs one request/response round trip against an OpenAI-compatible
// chat completion endpoint. No retry; a failed call fails the ticket creation
// path that asked for it.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
}

type Option func(*Client)

func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model,omitempty"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask summarizes the question text into a Result.
func (x *Client) Ask(ctx context.Context, text string) (*Result, error) {
	eb := goerr.NewBuilder(goerr.V("endpoint", x.endpoint))

	body, err := json.Marshal(chatRequest{
		Model: x.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Stream: false,
	})
	if err != nil {
		return nil, eb.Wrap(err, "failed to marshal AI request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, eb.Wrap(err, "failed to build AI request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, eb.Wrap(err, "failed to call AI endpoint", goerr.T(errs.TagAIError))
	}
	defer safe.Close(ctx, resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eb.Wrap(err, "failed to read AI response", goerr.T(errs.TagAIError))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, eb.New("AI endpoint returned non-200",
			goerr.T(errs.TagAIError),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, eb.Wrap(err, "failed to parse AI response envelope",
			goerr.T(errs.TagInvalidAIResponse), goerr.V("body", string(respBody)))
	}
	if len(chatResp.Choices) == 0 {
		return nil, eb.New("AI response has no choices",
			goerr.T(errs.TagInvalidAIResponse), goerr.V("body", string(respBody)))
	}

	content := stripCodeFence(chatResp.Choices[0].Message.Content)
	logging.From(ctx).Debug("AI completion received", "content", content)

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, eb.Wrap(err, "AI content is not valid JSON",
			goerr.T(errs.TagInvalidAIResponse), goerr.V("content", content))
	}
	if result.Summary == "" || result.Response == "" {
		return nil, eb.New("AI content is missing required fields",
			goerr.T(errs.TagInvalidAIResponse), goerr.V("content", content))
	}

	return &result, nil
}

// stripCodeFence tolerates models that fence the JSON despite the prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
