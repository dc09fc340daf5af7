// Package llm turns bar requests into one chat-completion call and turns the
// reply back into a structured suggestion.
package llm

import (
	"context"
	"time"
)

const (
	// RequestTimeout bounds every call to the language model.
	RequestTimeout = 30 * time.Second

	DefaultModel       = "qwen-plus"
	DefaultTemperature = float32(0.7)

	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// ChatClient sends a chat-style request and returns the first completion's
// text.
type ChatClient interface {
	ProviderID() string
	Model() string
	Complete(ctx context.Context, messages []Message, temperature float32) (string, error)
}
