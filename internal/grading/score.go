// Package grading scores submitted answer sheets and decides pass and
// retry eligibility against a fixed percentage threshold.
package grading

import (
	"fmt"
	"time"

	"github.com/quizbox/quizbox/internal/quiz"
)

// Score computes the percentage of questions whose selected option index
// matches the answer key. A nil element is an unanswered question and
// never matches. No rounding; display formatting is the caller's concern.
func Score(questions []quiz.Question, answers []*int) float64 {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectAnswerIndex {
			correct++
		}
	}
	return float64(correct) / float64(len(questions)) * 100
}

// BuildAttempt scores an answer sheet and assembles the attempt record
// to persist. The answer sheet must align one-to-one with the quiz's
// question list. The recorded start time is submission time minus the
// allotted duration, not the true interaction start; that approximation
// is part of the stored contract and must not be silently corrected.
func BuildAttempt(q quiz.Quiz, studentID string, answers []*int, submittedAt time.Time) (quiz.Attempt, error) {
	if len(answers) != len(q.Questions) {
		return quiz.Attempt{}, fmt.Errorf("answer sheet has %d entries, quiz has %d questions", len(answers), len(q.Questions))
	}
	end := submittedAt.UnixMilli()
	return quiz.Attempt{
		QuizID:    q.ID,
		StudentID: studentID,
		StartTime: end - int64(q.Duration)*time.Minute.Milliseconds(),
		EndTime:   end,
		Score:     Score(q.Questions, answers),
		Answers:   answers,
	}, nil
}

// QuestionResult is one line of a post-attempt review.
type QuestionResult struct {
	QuestionText  string
	SelectedText  string // empty when unanswered
	CorrectText   string
	Answered      bool
	Correct       bool
}

// Review pairs each question with the answer given in the attempt.
// Answers outside the option range show as unanswered rather than
// indexing out of bounds.
func Review(q quiz.Quiz, a quiz.Attempt) []QuestionResult {
	out := make([]QuestionResult, 0, len(q.Questions))
	for i, qu := range q.Questions {
		res := QuestionResult{
			QuestionText: qu.QuestionText,
			CorrectText:  qu.Options[qu.CorrectAnswerIndex],
		}
		if i < len(a.Answers) && a.Answers[i] != nil {
			sel := *a.Answers[i]
			if sel >= 0 && sel < len(qu.Options) {
				res.Answered = true
				res.SelectedText = qu.Options[sel]
				res.Correct = sel == qu.CorrectAnswerIndex
			}
		}
		out = append(out, res)
	}
	return out
}
