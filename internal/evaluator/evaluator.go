package evaluator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prepdrill/prepdrill/internal/openai"
	"go.uber.org/zap"
)

// SkipSentinel is recorded in place of an answer the candidate skipped.
const SkipSentinel = "SKIPPED"

// SkipFeedback is the fixed feedback for skipped questions.
const SkipFeedback = "Question was skipped."

// fallbackFeedback stands in when the model call itself fails.
const fallbackFeedback = "Your answer demonstrates good knowledge of the topic. " +
	"Consider adding more specific examples to strengthen your points. " +
	"Also, try to structure your answer using the STAR method (Situation, Task, Action, Result) for clearer communication."

// Evaluator turns a (question, answer) pair into feedback text and a score.
// It never fails: every failure mode maps to a documented fallback.
type Evaluator interface {
	Evaluate(ctx context.Context, role, domain, interviewType, question, answer string) (feedback string, score int)
}

// ChatClient is the slice of the OpenAI client the evaluator needs.
type ChatClient interface {
	Chat(ctx context.Context, req openai.ChatRequest) (string, error)
}

// LLMEvaluator scores answers by asking the model to grade against a rubric
// and parsing the "FEEDBACK: ... SCORE: N/10" reply format.
type LLMEvaluator struct {
	client    ChatClient
	maxTokens int
	logger    *zap.Logger
}

func NewLLMEvaluator(client ChatClient, maxTokens int, logger *zap.Logger) *LLMEvaluator {
	return &LLMEvaluator{
		client:    client,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, role, domain, interviewType, question, answer string) (string, int) {
	if answer == SkipSentinel {
		return SkipFeedback, 0
	}

	resp, err := e.client.Chat(ctx, openai.ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": "You are an expert interviewer helping candidates prepare for job interviews."},
			{"role": "user", "content": buildPrompt(role, domain, interviewType, question, answer)},
		},
		MaxTokens: e.maxTokens,
	})
	if err != nil {
		// Total call failure gets the canned encouragement and a 7, distinct
		// from the neutral 5 used for unparseable replies.
		e.logger.Sugar().Warnw("evaluation call failed", "err", err)
		return fallbackFeedback, 7
	}

	return Parse(resp)
}

// Parse splits a model reply on the first "SCORE:" marker. The text before
// it (minus a leading "FEEDBACK:" label) is the feedback; the text after it
// up to the first "/" must parse as an integer. A missing marker or a failed
// conversion falls back to the full reply with a neutral 5. Scores are not
// range-checked; a malformed value the model produced passes through.
func Parse(text string) (string, int) {
	before, after, found := strings.Cut(text, "SCORE:")
	if !found {
		return text, 5
	}

	feedback := strings.TrimSpace(before)
	feedback = strings.TrimSpace(strings.TrimPrefix(feedback, "FEEDBACK:"))

	scoreStr, _, _ := strings.Cut(after, "/")
	score, err := strconv.Atoi(strings.TrimSpace(scoreStr))
	if err != nil {
		return text, 5
	}

	return feedback, score
}

func buildPrompt(role, domain, interviewType, question, answer string) string {
	return fmt.Sprintf(`You are an expert %s interviewer specializing in %s topics.

The candidate is answering a %s interview question:

Question: %s

Candidate's Answer: %s

Please evaluate this answer based on the following criteria:
1. Correctness: Is the answer technically accurate?
2. Completeness: Does it cover all important aspects?
3. Clarity: Is it well-articulated and easy to understand?
4. Structure: Is the answer well-organized?

First, provide constructive feedback (2-3 paragraphs).
Then, rate the answer on a scale of 1-10.

Format your response as:
FEEDBACK: [Your feedback here]
SCORE: [Score]/10`, role, domain, interviewType, question, answer)
}
