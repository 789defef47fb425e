package llm

import (
	"fmt"
	"strings"

	"stylewriter/internal/port"
)

// FewShot primes style extraction with instructions and one worked example.
type FewShot struct {
	Instructions   string
	TrainingInput  string
	TrainingOutput string
}

// BuildStyleExtractionRequest asks the model to describe the writing style of text.
func BuildStyleExtractionRequest(shot FewShot, text, additional string, temperature float64) port.ChatRequest {
	if additional = strings.TrimSpace(additional); additional != "" {
		text = fmt.Sprintf("%s\n\n[Additional Instructions: %s]", text, additional)
	}
	return port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleSystem, Content: shot.Instructions},
			{Role: port.RoleUser, Content: shot.TrainingInput},
			{Role: port.RoleAssistant, Content: shot.TrainingOutput},
			{Role: port.RoleUser, Content: text},
		},
		Temperature: temperature,
	}
}

// RewritePrompt is everything a rewrite request is conditioned on.
type RewritePrompt struct {
	Style                 string
	Guidelines            string
	Example               string
	Content               string
	AdditionalInstruction string
	MaxWords              int
	Temperature           float64
	MaxTokens             int
}

// BuildRewriteRequest renders the rewrite system prompt and user turn.
func BuildRewriteRequest(p RewritePrompt) port.ChatRequest {
	system := []string{
		"You are an expert writer assistant. Rewrite the user input based on the following writing style, writing guidelines and writing example.\n",
		fmt.Sprintf("<writingStyle>%s</writingStyle>\n", p.Style),
		fmt.Sprintf("<writingGuidelines>%s</writingGuidelines>\n", p.Guidelines),
		fmt.Sprintf("<writingExample>%s</writingExample>\n", p.Example),
		"Make sure to emulate the writing style, guidelines and example provided above.",
		fmt.Sprintf("YOU CAN ONLY OUTPUT A MAXIMUM OF %d WORDS", p.MaxWords),
	}
	if extra := strings.TrimSpace(p.AdditionalInstruction); extra != "" {
		system = append(system, fmt.Sprintf("\n<additionalInstructions>%s</additionalInstructions>", extra))
	}
	return port.ChatRequest{
		Messages: []port.ChatMessage{
			{Role: port.RoleSystem, Content: strings.Join(system, "\n")},
			{Role: port.RoleUser, Content: p.Content},
		},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}
}

// SplitSystem separates system turns from the conversation for providers
// that take the system prompt as a separate field.
func SplitSystem(msgs []port.ChatMessage) (string, []port.ChatMessage) {
	var system []string
	rest := make([]port.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == port.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n\n"), rest
}
