package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prepdrill/prepdrill/internal/openai"
	"github.com/prepdrill/prepdrill/pkg/model"
)

type fakeChat struct {
	req openai.ChatRequest
	err error
}

func (f *fakeChat) Chat(_ context.Context, req openai.ChatRequest) (string, error) {
	f.req = req
	if f.err != nil {
		return "", f.err
	}
	return "ok", nil
}

func TestReply_BuildsConversation(t *testing.T) {
	chat := &fakeChat{}
	c := New(chat, 0.7)

	history := []model.ChatTurn{
		{User: "hello", Assistant: "hi, ready to practice?"},
		{User: "yes"},
	}
	if _, err := c.Reply(context.Background(), "Data Scientist", "ask me something", history); err != nil {
		t.Fatal(err)
	}

	msgs := chat.req.Messages
	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(msgs))
	}
	if msgs[0]["role"] != "system" || !strings.Contains(msgs[0]["content"], "Data Scientist position") {
		t.Errorf("system message missing role tailoring: %q", msgs[0]["content"])
	}
	if msgs[1]["role"] != "user" || msgs[2]["role"] != "assistant" {
		t.Errorf("history not interleaved: %v", msgs)
	}
	if msgs[4]["content"] != "ask me something" {
		t.Errorf("last message = %q", msgs[4]["content"])
	}
	if chat.req.MaxTokens != 800 {
		t.Errorf("max tokens = %d, want 800", chat.req.MaxTokens)
	}
}

func TestReply_NoRoleLeavesSystemMessageAlone(t *testing.T) {
	chat := &fakeChat{}
	c := New(chat, 0.7)

	if _, err := c.Reply(context.Background(), "", "hi", nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(chat.req.Messages[0]["content"], "position") {
		t.Error("system message should not mention a position without a role")
	}
}

func TestReply_PropagatesError(t *testing.T) {
	c := New(&fakeChat{err: errors.New("boom")}, 0.7)

	if _, err := c.Reply(context.Background(), "", "hi", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestGreeting(t *testing.T) {
	g := Greeting("Software Engineer")
	if !strings.Contains(g, "Software Engineer position") || !strings.Contains(g, "Tell me about yourself") {
		t.Errorf("unexpected greeting: %q", g)
	}
}
