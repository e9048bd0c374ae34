package anthropic

import (
	"context"
	"errors"
	"strings"
	"sync"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/resilience"
)

// Completer sends single free-text prompts with a fixed model and
// temperature and returns the trimmed completion text. Transient network
// and 5xx failures are retried under the configured policy; auth and
// malformed-request failures fail immediately.
type Completer struct {
	client      Client
	model       string
	temperature float64
	maxTokens   int64
	retry       resilience.Policy

	mu    sync.Mutex
	usage TokenUsage
}

// NewCompleter creates a Completer over the given client.
func NewCompleter(client Client, model string, temperature float64, maxTokens int64, retry resilience.Policy) *Completer {
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Completer{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		retry:       retry,
	}
}

// Complete sends a prompt and returns the completion text trimmed of
// surrounding whitespace.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	policy := c.retry
	policy.ShouldRetry = retryable
	if policy.OnRetry == nil {
		policy.OnRetry = resilience.RetryLogger("anthropic", "complete")
	}

	resp, err := resilience.DoVal(ctx, policy, func(ctx context.Context) (*MessageResponse, error) {
		return c.client.CreateMessage(ctx, MessageRequest{
			Model:       c.model,
			MaxTokens:   c.maxTokens,
			Temperature: &c.temperature,
			Messages:    []Message{{Role: "user", Content: prompt}},
		})
	})
	if err != nil {
		return "", eris.Wrap(err, "anthropic: completion")
	}

	c.mu.Lock()
	c.usage.Add(resp.Usage)
	c.mu.Unlock()

	return strings.TrimSpace(resp.Text()), nil
}

// Usage returns the accumulated token usage across all completions.
func (c *Completer) Usage() TokenUsage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usage
}

// Model returns the fixed model identifier.
func (c *Completer) Model() string {
	return c.model
}

// retryable classifies completion errors. API errors retry only on
// transient status codes; everything else falls back to the network-level
// transient check.
func retryable(err error) bool {
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		return resilience.IsTransientHTTPStatus(apiErr.StatusCode)
	}
	return resilience.IsTransient(err)
}
