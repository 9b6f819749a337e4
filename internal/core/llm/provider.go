// Package llm holds the completion providers behind one capability:
// turn a system prompt plus a short conversation window into reply text.
package llm

import (
	"context"

	"github.com/smartprobono/intake-api/internal/models"
)

// Provider is a single external completion API. Implementations return
// ("", nil) when the API answered 2xx with empty content; callers are
// expected to substitute the rule-based fallback in that case. A non-2xx
// status or transport failure wraps core.ErrProvider. No retries.
type Provider interface {
	Complete(ctx context.Context, system string, history []models.Message, userMessage string) (string, error)
}

// ContextWindow is the number of trailing messages sent as rolling context.
const ContextWindow = 5

// Window returns the trailing ContextWindow messages.
func Window(messages []models.Message) []models.Message {
	if len(messages) <= ContextWindow {
		return messages
	}
	return messages[len(messages)-ContextWindow:]
}
