// Package inference abstracts the chat-completion backends used to
// produce both the plain and the structured analysis responses.
package inference

import (
	"context"

	"github.com/openai/openai-go/v3"
)

// Inferencer runs a single system+user exchange against a model backend.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}
