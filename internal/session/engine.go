package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prepdrill/prepdrill/internal/evaluator"
	"github.com/prepdrill/prepdrill/internal/questionbank"
	"github.com/prepdrill/prepdrill/internal/report"
	"github.com/prepdrill/prepdrill/pkg/model"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Sentinel errors for transitions attempted in the wrong state. The HTTP
// layer maps these to user-facing messages.
var (
	ErrNoSession       = errors.New("no active session")
	ErrCompleted       = errors.New("interview already completed")
	ErrNothingToReport = errors.New("no questions answered yet")
)

// State is the mutable record of one interview run. The four parallel slices
// (answers, feedback, scores, elapsed) always have exactly Index entries.
type State struct {
	ID                string
	Role              string
	Domain            string
	InterviewType     string
	Difficulty        string
	Questions         []string
	Index             int
	Answers           []string
	Feedback          []string
	Scores            []int
	Elapsed           []time.Duration
	StartedAt         time.Time
	QuestionStartedAt time.Time
	Status            Status
}

// Engine owns the single active session and its transitions. Starting a new
// interview discards the previous session entirely; only saved transcripts
// survive. The mutex serializes transitions so each one runs to completion
// before the next is accepted.
type Engine struct {
	mu        sync.Mutex
	provider  questionbank.Provider
	evaluator evaluator.Evaluator
	now       func() time.Time
	state     *State
}

func NewEngine(provider questionbank.Provider, eval evaluator.Evaluator) *Engine {
	return &Engine{
		provider:  provider,
		evaluator: eval,
		now:       time.Now,
	}
}

// StartResult is what the UI needs to present the first question.
type StartResult struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question,omitempty"`
	Total     int    `json:"total_questions"`
	Completed bool   `json:"completed"`
}

// Start replaces any existing session with a fresh one. A provider that
// returns no questions completes the session immediately; Completed signals
// the caller that no further transitions are meaningful.
func (e *Engine) Start(ctx context.Context, role, domain, interviewType, difficulty string, count int) *StartResult {
	questions := e.provider.Questions(ctx, role, domain, interviewType, count)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	st := &State{
		ID:                uuid.NewString(),
		Role:              role,
		Domain:            domain,
		InterviewType:     interviewType,
		Difficulty:        difficulty,
		Questions:         questions,
		Answers:           []string{},
		Feedback:          []string{},
		Scores:            []int{},
		Elapsed:           []time.Duration{},
		StartedAt:         now,
		QuestionStartedAt: now,
		Status:            StatusInProgress,
	}
	if len(questions) == 0 {
		st.Status = StatusCompleted
	}
	e.state = st

	res := &StartResult{
		SessionID: st.ID,
		Total:     len(questions),
		Completed: st.Status == StatusCompleted,
	}
	if len(questions) > 0 {
		res.Question = questions[0]
	}
	return res
}

// StepResult describes the outcome of answering or skipping one question.
type StepResult struct {
	Feedback     string        `json:"feedback"`
	Score        int           `json:"score"`
	Elapsed      time.Duration `json:"-"`
	ElapsedSecs  float64       `json:"elapsed_seconds"`
	NextQuestion string        `json:"next_question,omitempty"`
	Answered     int           `json:"answered"`
	Total        int           `json:"total_questions"`
	Completed    bool          `json:"completed"`
}

// SubmitAnswer records the answer for the current question and advances the
// session. A blank answer is recorded as a skip: sentinel answer, score 0,
// fixed feedback, and no evaluator call. The evaluator itself never fails,
// so the answer, feedback, score and elapsed entries always advance together
// with the index.
func (e *Engine) SubmitAnswer(ctx context.Context, text string) (*StepResult, error) {
	return e.advance(ctx, text)
}

// Skip is equivalent to submitting a blank answer.
func (e *Engine) Skip(ctx context.Context) (*StepResult, error) {
	return e.advance(ctx, "")
}

func (e *Engine) advance(ctx context.Context, text string) (*StepResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st == nil {
		return nil, ErrNoSession
	}
	if st.Status != StatusInProgress {
		return nil, ErrCompleted
	}

	answer := strings.TrimSpace(text)
	var feedback string
	var score int
	if answer == "" {
		answer = evaluator.SkipSentinel
		feedback, score = evaluator.SkipFeedback, 0
	} else {
		feedback, score = e.evaluator.Evaluate(ctx, st.Role, st.Domain, st.InterviewType, st.Questions[st.Index], answer)
	}

	now := e.now()
	elapsed := now.Sub(st.QuestionStartedAt)

	st.Answers = append(st.Answers, answer)
	st.Feedback = append(st.Feedback, feedback)
	st.Scores = append(st.Scores, score)
	st.Elapsed = append(st.Elapsed, elapsed)
	st.Index++

	res := &StepResult{
		Feedback:    feedback,
		Score:       score,
		Elapsed:     elapsed,
		ElapsedSecs: elapsed.Seconds(),
		Answered:    st.Index,
		Total:       len(st.Questions),
	}
	if st.Index == len(st.Questions) {
		st.Status = StatusCompleted
		res.Completed = true
	} else {
		st.QuestionStartedAt = now
		res.NextQuestion = st.Questions[st.Index]
	}
	return res, nil
}

// Retry re-presents the current question. Nothing recorded so far changes;
// only the elapsed-time origin resets.
func (e *Engine) Retry() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st == nil {
		return "", ErrNoSession
	}
	if st.Status != StatusInProgress {
		return "", ErrCompleted
	}

	st.QuestionStartedAt = e.now()
	return st.Questions[st.Index], nil
}

// Snapshot returns a copy of the current state for display.
func (e *Engine) Snapshot() (*State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil, ErrNoSession
	}

	cp := *e.state
	cp.Questions = append([]string(nil), e.state.Questions...)
	cp.Answers = append([]string(nil), e.state.Answers...)
	cp.Feedback = append([]string(nil), e.state.Feedback...)
	cp.Scores = append([]int(nil), e.state.Scores...)
	cp.Elapsed = append([]time.Duration(nil), e.state.Elapsed...)
	return &cp, nil
}

// Report computes the report view over everything answered so far. It works
// on partial sessions too but needs at least one processed question.
func (e *Engine) Report() (*report.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st == nil {
		return nil, ErrNoSession
	}
	if st.Index == 0 {
		return nil, ErrNothingToReport
	}

	return report.Build(e.sessionInfoLocked(), st.Answers, st.Feedback, st.Scores), nil
}

// Record assembles the transcript for persistence, report included.
func (e *Engine) Record() (*model.SessionRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	if st == nil {
		return nil, ErrNoSession
	}
	if st.Index == 0 {
		return nil, ErrNothingToReport
	}

	info := e.sessionInfoLocked()
	rep := report.Build(info, st.Answers, st.Feedback, st.Scores)
	return &model.SessionRecord{
		SessionInfo: info,
		Answers:     append([]string(nil), st.Answers...),
		Feedback:    append([]string(nil), st.Feedback...),
		Scores:      append([]int(nil), st.Scores...),
		Report:      rep.Markdown,
	}, nil
}

func (e *Engine) sessionInfoLocked() model.SessionInfo {
	st := e.state
	return model.SessionInfo{
		SessionID:     st.ID,
		Role:          st.Role,
		Domain:        st.Domain,
		InterviewType: st.InterviewType,
		Difficulty:    st.Difficulty,
		StartTime:     st.StartedAt.Format(time.RFC3339),
		Questions:     append([]string(nil), st.Questions...),
	}
}
