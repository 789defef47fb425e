package port

import "context"

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatRequest carries a conversation to a language model.
type ChatRequest struct {
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// ChatResponse contains the model's reply.
type ChatResponse struct {
	Text      string
	ModelUsed string
}

// ChatModel abstracts a text-in, text-out language model.
type ChatModel interface {
	Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
