// Package quizbox is the embeddable core of the quiz application: a
// key/value-backed record store for users, quizzes and attempts, a
// persistent login session, and the attempt scoring flow. UI layers are
// expected to call into App; there is no network or CLI surface.
package quizbox

import (
	"context"
	"time"

	"github.com/quizbox/quizbox/internal/audit"
	"github.com/quizbox/quizbox/internal/config"
	"github.com/quizbox/quizbox/internal/grading"
	"github.com/quizbox/quizbox/internal/kvstore"
	"github.com/quizbox/quizbox/internal/quiz"
	"github.com/quizbox/quizbox/internal/session"
)

// Re-exported record types; see internal/quiz for field contracts.
type (
	User           = quiz.User
	Question       = quiz.Question
	Quiz           = quiz.Quiz
	Attempt        = quiz.Attempt
	Role           = quiz.Role
	Repo           = quiz.Repo
	Session        = session.Session
	Config         = config.Config
	QuestionResult = grading.QuestionResult
)

const (
	RoleStudent = quiz.RoleStudent
	RoleAdmin   = quiz.RoleAdmin
)

// App wires the storage medium, data access, session state and scoring
// policy together for one process.
type App struct {
	Repo    *Repo
	Session *Session
	Policy  grading.Policy
	Audit   *audit.Log

	store kvstore.Store
}

// Open builds an App from cfg: opens the medium, seeds demo data when
// enabled, and rehydrates any persisted login.
func Open(ctx context.Context, cfg Config) (*App, error) {
	store, err := config.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log := audit.NewLog(store)
	repo := quiz.NewRepo(store, quiz.WithAudit(log))
	if cfg.SeedDemoData {
		if err := quiz.Seed(repo); err != nil {
			store.Close()
			return nil, err
		}
	}
	sess, err := session.New(repo, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	threshold := cfg.PassingScore
	if threshold == 0 {
		threshold = grading.DefaultPassingScore
	}
	return &App{
		Repo:    repo,
		Session: sess,
		Policy:  grading.Policy{Threshold: threshold},
		Audit:   log,
		store:   store,
	}, nil
}

// OpenFromEnv is Open with configuration read from the environment.
func OpenFromEnv(ctx context.Context) (*App, error) {
	return Open(ctx, config.FromEnv())
}

func (a *App) Close() error { return a.store.Close() }

// SubmitAttempt scores the answer sheet against the quiz and persists
// the resulting immutable attempt record.
func (a *App) SubmitAttempt(q Quiz, studentID string, answers []*int, submittedAt time.Time) (Attempt, error) {
	att, err := grading.BuildAttempt(q, studentID, answers, submittedAt)
	if err != nil {
		return Attempt{}, err
	}
	return a.Repo.SaveAttempt(att)
}

// CanRetry reports whether the student may attempt the quiz: true with
// no prior attempt, or when the most recent one scored below the
// passing threshold.
func (a *App) CanRetry(studentID, quizID string) (bool, error) {
	history, err := a.Repo.AttemptsByStudent(studentID)
	if err != nil {
		return false, err
	}
	return a.Policy.CanRetry(history, quizID), nil
}

// Passed applies the configured threshold to a score.
func (a *App) Passed(score float64) bool { return a.Policy.Passed(score) }

// History returns the student's attempts, most recent first.
func (a *App) History(studentID string) ([]Attempt, error) {
	attempts, err := a.Repo.AttemptsByStudent(studentID)
	if err != nil {
		return nil, err
	}
	return grading.History(attempts), nil
}

// Review resolves an attempt against its quiz for display. ok is false
// when the quiz has since been deleted; the attempt itself is always
// kept.
func (a *App) Review(att Attempt) ([]QuestionResult, bool, error) {
	q, ok, err := a.Repo.QuizByID(att.QuizID)
	if err != nil || !ok {
		return nil, false, err
	}
	return grading.Review(q, att), true, nil
}
