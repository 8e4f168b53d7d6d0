package grading

import (
	"sort"

	"github.com/quizbox/quizbox/internal/quiz"
)

// DefaultPassingScore is the percentage gating pass/fail display and
// reattempt eligibility.
const DefaultPassingScore = 50.0

type Policy struct {
	Threshold float64
}

func DefaultPolicy() Policy { return Policy{Threshold: DefaultPassingScore} }

func (p Policy) Passed(score float64) bool { return score >= p.Threshold }

// CanRetry reports whether a student may attempt the quiz again: true
// when they never attempted it, or when their most recent attempt (by
// end time) fell below the threshold. Pure over the supplied history.
func (p Policy) CanRetry(attempts []quiz.Attempt, quizID string) bool {
	var last *quiz.Attempt
	for i := range attempts {
		a := &attempts[i]
		if a.QuizID != quizID {
			continue
		}
		if last == nil || a.EndTime > last.EndTime {
			last = a
		}
	}
	return last == nil || last.Score < p.Threshold
}

// History returns the attempts ordered most recent first. The input
// slice is not modified.
func History(attempts []quiz.Attempt) []quiz.Attempt {
	out := make([]quiz.Attempt, len(attempts))
	copy(out, attempts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].EndTime > out[j].EndTime })
	return out
}
