package evaluator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prepdrill/prepdrill/internal/openai"
	"go.uber.org/zap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantFeedback string
		wantScore    int
	}{
		{
			name:         "labelled feedback and score",
			input:        "FEEDBACK: Good job.\nSCORE: 8/10",
			wantFeedback: "Good job.",
			wantScore:    8,
		},
		{
			name:         "unlabelled feedback",
			input:        "Solid answer overall.\nSCORE: 6/10",
			wantFeedback: "Solid answer overall.",
			wantScore:    6,
		},
		{
			name:         "score without denominator",
			input:        "FEEDBACK: Fine.\nSCORE: 9",
			wantFeedback: "Fine.",
			wantScore:    9,
		},
		{
			name:         "missing marker defaults to 5",
			input:        "The answer shows some understanding but lacks depth.",
			wantFeedback: "The answer shows some understanding but lacks depth.",
			wantScore:    5,
		},
		{
			name:         "unparseable score defaults to 5 with full text",
			input:        "FEEDBACK: Hmm.\nSCORE: eight/10",
			wantFeedback: "FEEDBACK: Hmm.\nSCORE: eight/10",
			wantScore:    5,
		},
		{
			name:         "out of range score passes through",
			input:        "FEEDBACK: Wow.\nSCORE: 15/10",
			wantFeedback: "Wow.",
			wantScore:    15,
		},
		{
			name:         "only first marker splits",
			input:        "FEEDBACK: Mentioned SCORE: 3/10 in passing.\nSCORE: 7/10",
			wantFeedback: "Mentioned",
			wantScore:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedback, score := Parse(tt.input)
			if feedback != tt.wantFeedback {
				t.Errorf("feedback = %q, want %q", feedback, tt.wantFeedback)
			}
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}

type fakeChat struct {
	reply  string
	err    error
	called bool
	prompt string
}

func (f *fakeChat) Chat(_ context.Context, req openai.ChatRequest) (string, error) {
	f.called = true
	if len(req.Messages) > 0 {
		f.prompt = req.Messages[len(req.Messages)-1]["content"]
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestLLMEvaluator_SkipShortCircuits(t *testing.T) {
	chat := &fakeChat{}
	e := NewLLMEvaluator(chat, 500, zap.NewNop())

	feedback, score := e.Evaluate(context.Background(), "SE", "backend", "technical", "q", SkipSentinel)
	if feedback != SkipFeedback || score != 0 {
		t.Errorf("got (%q, %d), want (%q, 0)", feedback, score, SkipFeedback)
	}
	if chat.called {
		t.Error("skipped answers must not hit the model")
	}
}

func TestLLMEvaluator_ParsesReply(t *testing.T) {
	chat := &fakeChat{reply: "FEEDBACK: Clear and correct.\nSCORE: 9/10"}
	e := NewLLMEvaluator(chat, 500, zap.NewNop())

	feedback, score := e.Evaluate(context.Background(), "Software Engineer", "backend", "technical",
		"Explain RESTful API design principles.", "REST uses resources and verbs.")
	if feedback != "Clear and correct." {
		t.Errorf("feedback = %q", feedback)
	}
	if score != 9 {
		t.Errorf("score = %d, want 9", score)
	}
	for _, want := range []string{
		"expert Software Engineer interviewer",
		"Explain RESTful API design principles.",
		"REST uses resources and verbs.",
		"SCORE: [Score]/10",
	} {
		if !strings.Contains(chat.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestLLMEvaluator_CallFailureUsesCannedFallback(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}
	e := NewLLMEvaluator(chat, 500, zap.NewNop())

	feedback, score := e.Evaluate(context.Background(), "SE", "backend", "technical", "q", "an answer")
	if score != 7 {
		t.Errorf("score = %d, want 7 on total call failure", score)
	}
	if !strings.Contains(feedback, "STAR method") {
		t.Errorf("expected the canned encouragement, got %q", feedback)
	}
}
