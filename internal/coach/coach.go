package coach

import (
	"context"
	"fmt"

	"github.com/prepdrill/prepdrill/internal/openai"
	"github.com/prepdrill/prepdrill/pkg/model"
)

const systemMessage = `You are an AI interview preparation assistant specialized in helping candidates prepare for job interviews.
Your role is to:
1. Ask relevant interview questions based on the job role provided
2. Evaluate candidate responses
3. Provide constructive feedback on content, delivery, and confidence
4. Offer sample answers when appropriate
5. Give tips for improvement
6. Simulate a realistic interview experience

Maintain a professional but encouraging tone. Challenge the candidate with realistic questions without being too harsh in feedback.`

// ChatClient is the slice of the OpenAI client the coach needs.
type ChatClient interface {
	Chat(ctx context.Context, req openai.ChatRequest) (string, error)
}

// Coach drives the free-form practice chat: a system message, the growing
// history, and the candidate's next message.
type Coach struct {
	client      ChatClient
	temperature float32
}

func New(client ChatClient, temperature float32) *Coach {
	return &Coach{client: client, temperature: temperature}
}

func (c *Coach) Reply(ctx context.Context, jobRole, message string, history []model.ChatTurn) (string, error) {
	sys := systemMessage
	if jobRole != "" {
		sys += fmt.Sprintf("\n\nThe candidate is preparing for a %s position. Tailor your questions and feedback accordingly.", jobRole)
	}

	msgs := make([]map[string]string, 0, 2*len(history)+2)
	msgs = append(msgs, map[string]string{"role": "system", "content": sys})
	for _, t := range history {
		msgs = append(msgs, map[string]string{"role": "user", "content": t.User})
		if t.Assistant != "" {
			msgs = append(msgs, map[string]string{"role": "assistant", "content": t.Assistant})
		}
	}
	msgs = append(msgs, map[string]string{"role": "user", "content": message})

	return c.client.Chat(ctx, openai.ChatRequest{
		Messages:    msgs,
		Temperature: c.temperature,
		MaxTokens:   800,
	})
}

// Greeting opens a fresh chat once a job role is known.
func Greeting(jobRole string) string {
	return fmt.Sprintf("Hello! I'll be your interview preparation assistant for the %s position. Let's start with a common question: Tell me about yourself and why you're interested in this role.", jobRole)
}
