package report

import (
	"fmt"
	"strings"

	"github.com/prepdrill/prepdrill/internal/evaluator"
	"github.com/prepdrill/prepdrill/pkg/model"
)

// QuestionResult is one row of the per-question breakdown.
type QuestionResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Feedback string `json:"feedback"`
	Score    int    `json:"score"`
	Skipped  bool   `json:"skipped"`
}

// Report is a read-only view derived from session state. It is recomputed on
// demand and never stored as mutable state.
type Report struct {
	Role               string           `json:"role"`
	Domain             string           `json:"domain,omitempty"`
	InterviewType      string           `json:"interview_type"`
	Difficulty         string           `json:"difficulty,omitempty"`
	StartTime          string           `json:"start_time"`
	QuestionsAttempted int              `json:"questions_attempted"`
	AverageScore       float64          `json:"average_score"`
	Strengths          []string         `json:"strengths"`
	Weaknesses         []string         `json:"weaknesses"`
	Breakdown          []QuestionResult `json:"breakdown"`
	Markdown           string           `json:"markdown"`
}

// Build computes the report for the answers accumulated so far. The average
// counts only positive scores, so skipped questions add nothing to either
// side of the division.
func Build(info model.SessionInfo, answers, feedback []string, scores []int) *Report {
	var sum, valid int
	for _, s := range scores {
		if s > 0 {
			sum += s
			valid++
		}
	}
	var avg float64
	if valid > 0 {
		avg = float64(sum) / float64(valid)
	}

	var strengths, weaknesses []string
	switch {
	case avg >= 8:
		strengths = []string{"Strong technical knowledge", "Clear communication"}
		weaknesses = []string{}
	case avg >= 6:
		strengths = []string{"Good foundational knowledge"}
		weaknesses = []string{"Could improve depth in certain areas"}
	default:
		strengths = []string{}
		weaknesses = []string{"Needs to strengthen technical knowledge", "Could improve answer structure"}
	}

	n := len(answers)
	if len(info.Questions) < n {
		n = len(info.Questions)
	}
	breakdown := make([]QuestionResult, 0, n)
	for i := 0; i < n; i++ {
		breakdown = append(breakdown, QuestionResult{
			Question: info.Questions[i],
			Answer:   answers[i],
			Feedback: feedback[i],
			Score:    scores[i],
			Skipped:  answers[i] == evaluator.SkipSentinel,
		})
	}

	r := &Report{
		Role:               info.Role,
		Domain:             info.Domain,
		InterviewType:      info.InterviewType,
		Difficulty:         info.Difficulty,
		StartTime:          info.StartTime,
		QuestionsAttempted: len(answers),
		AverageScore:       avg,
		Strengths:          strengths,
		Weaknesses:         weaknesses,
		Breakdown:          breakdown,
	}
	r.Markdown = r.render()
	return r
}

func (r *Report) render() string {
	var b strings.Builder

	b.WriteString("# Interview Report\n\n")
	b.WriteString("## Session Summary\n")
	fmt.Fprintf(&b, "- Role: %s\n", r.Role)
	fmt.Fprintf(&b, "- Domain: %s\n", r.Domain)
	fmt.Fprintf(&b, "- Interview Type: %s\n", r.InterviewType)
	fmt.Fprintf(&b, "- Date: %s\n\n", r.StartTime)

	b.WriteString("## Performance\n")
	fmt.Fprintf(&b, "- Questions Attempted: %d\n", r.QuestionsAttempted)
	fmt.Fprintf(&b, "- Average Score: %.1f/10\n\n", r.AverageScore)

	b.WriteString("## Strengths\n")
	for _, s := range r.Strengths {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\n## Areas for Improvement\n")
	for _, w := range r.Weaknesses {
		fmt.Fprintf(&b, "- %s\n", w)
	}

	b.WriteString("\n## Question Breakdown\n")
	for i, q := range r.Breakdown {
		fmt.Fprintf(&b, "\n### Question %d: %s\n", i+1, q.Question)
		answer := q.Answer
		if q.Skipped {
			answer = "[SKIPPED]"
		}
		fmt.Fprintf(&b, "- Your Answer: %s\n", answer)
		fmt.Fprintf(&b, "- Score: %d/10\n", q.Score)
		fmt.Fprintf(&b, "- Feedback: %s\n", q.Feedback)
	}

	b.WriteString("\n## Resources for Improvement\n")
	b.WriteString("- [Technical Interview Handbook](https://www.techinterviewhandbook.org/)\n")
	b.WriteString("- [Cracking the Coding Interview](https://www.crackingthecodinginterview.com/)\n")
	b.WriteString("- [Grokking the System Design Interview](https://www.educative.io/courses/grokking-the-system-design-interview)\n")

	return b.String()
}
