package questionbank

import (
	"context"
	"fmt"
	"math/rand"
)

// Provider resolves a (role, domain, interview type) combination to an
// ordered list of question texts. Implementations never fail: unknown
// combinations degrade to generic filler so the interview flow is never
// blocked on missing content.
type Provider interface {
	Questions(ctx context.Context, role, domain, interviewType string, count int) []string
}

// Fallback builds the deterministic filler list used whenever no real
// questions exist for a combination. The text is placeholder content, not
// meant to carry meaning.
func Fallback(interviewType, role string) []string {
	out := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, fmt.Sprintf("Generic %s question %d for %s", interviewType, i, role))
	}
	return out
}

// Sample picks count items without replacement. When count covers the whole
// list the list is returned in source order; a smaller count is drawn
// uniformly at random.
func Sample(list []string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	if count >= len(list) {
		return append([]string(nil), list...)
	}
	out := make([]string, 0, count)
	for _, i := range rand.Perm(len(list))[:count] {
		out = append(out, list[i])
	}
	return out
}
