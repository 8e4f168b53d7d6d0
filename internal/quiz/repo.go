package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quizbox/quizbox/internal/audit"
	"github.com/quizbox/quizbox/internal/kvstore"
)

// Storage keys. Each holds one whole JSON collection.
const (
	UsersKey    = "quiz_users"
	QuizzesKey  = "quiz_quizzes"
	AttemptsKey = "quiz_attempts"
)

// Repo is the data-access layer over a kvstore medium. Every operation
// is a full-collection round trip: read, mutate in memory, write back.
// The medium is assumed single-writer; concurrent repos over the same
// medium can lose updates.
type Repo struct {
	store    kvstore.Store
	verifier Verifier
	audit    *audit.Log
}

type Option func(*Repo)

// WithVerifier swaps the credential comparison strategy.
func WithVerifier(v Verifier) Option { return func(r *Repo) { r.verifier = v } }

// WithAudit records mutating operations to an event log.
func WithAudit(l *audit.Log) Option { return func(r *Repo) { r.audit = l } }

func NewRepo(s kvstore.Store, opts ...Option) *Repo {
	r := &Repo{store: s, verifier: PlaintextVerifier{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Raw collection accessors: full-collection round trips, no filtering.

func (r *Repo) Users() ([]User, error) { return kvstore.ReadJSON[User](r.store, UsersKey) }

func (r *Repo) SaveUsers(us []User) error { return kvstore.WriteJSON(r.store, UsersKey, us) }

func (r *Repo) Quizzes() ([]Quiz, error) { return kvstore.ReadJSON[Quiz](r.store, QuizzesKey) }

func (r *Repo) SaveQuizzes(qs []Quiz) error { return kvstore.WriteJSON(r.store, QuizzesKey, qs) }

func (r *Repo) Attempts() ([]Attempt, error) {
	return kvstore.ReadJSON[Attempt](r.store, AttemptsKey)
}

func (r *Repo) SaveAttempts(as []Attempt) error {
	return kvstore.WriteJSON(r.store, AttemptsKey, as)
}

// FindUserByCredentials scans for the first user of the given role whose
// role-specific identifier and password both match. A miss is (zero,
// false, nil), not an error.
func (r *Repo) FindUserByCredentials(identifier, password string, role Role) (User, bool, error) {
	users, err := r.Users()
	if err != nil {
		return User{}, false, err
	}
	for _, u := range users {
		if u.Role != role {
			continue
		}
		var id string
		switch role {
		case RoleStudent:
			id = u.RegistrationNumber
		case RoleAdmin:
			id = u.Username
		}
		if id == identifier && r.verifier.Verify(u.Password, password) {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

// RegisterStudent appends a new student account. The registration number
// is checked for uniqueness against the whole user collection, not just
// students; see DESIGN.md for why that quirk is kept.
func (r *Repo) RegisterStudent(name, registrationNumber, password string) (User, bool, error) {
	users, err := r.Users()
	if err != nil {
		return User{}, false, err
	}
	for _, u := range users {
		if u.RegistrationNumber == registrationNumber {
			return User{}, false, nil
		}
	}
	nu := User{
		ID:                 uuid.NewString(),
		Name:               name,
		RegistrationNumber: registrationNumber,
		Password:           password,
		Role:               RoleStudent,
	}
	if err := r.SaveUsers(append(users, nu)); err != nil {
		return User{}, false, err
	}
	r.record(audit.EventUserRegistered, nu.ID, nu)
	return nu, true, nil
}

// Students lists users with the student role, for admin reporting.
func (r *Repo) Students() ([]User, error) {
	users, err := r.Users()
	if err != nil {
		return nil, err
	}
	out := []User{}
	for _, u := range users {
		if u.Role == RoleStudent {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *Repo) QuizByID(id string) (Quiz, bool, error) {
	qs, err := r.Quizzes()
	if err != nil {
		return Quiz{}, false, err
	}
	for _, q := range qs {
		if q.ID == id {
			return q, true, nil
		}
	}
	return Quiz{}, false, nil
}

// ActiveQuizzes lists the quizzes visible to students.
func (r *Repo) ActiveQuizzes() ([]Quiz, error) {
	qs, err := r.Quizzes()
	if err != nil {
		return nil, err
	}
	out := []Quiz{}
	for _, q := range qs {
		if q.IsActive {
			out = append(out, q)
		}
	}
	return out, nil
}

// SaveQuiz upserts by id. A blank quiz or question id gets a fresh one,
// so the same path serves create and edit.
func (r *Repo) SaveQuiz(q Quiz) (Quiz, error) {
	for i, qu := range q.Questions {
		if qu.CorrectAnswerIndex < 0 || qu.CorrectAnswerIndex >= len(qu.Options) {
			return Quiz{}, fmt.Errorf("question %d: correct answer index %d out of range", i, qu.CorrectAnswerIndex)
		}
		if qu.ID == "" {
			q.Questions[i].ID = uuid.NewString()
		}
	}
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	qs, err := r.Quizzes()
	if err != nil {
		return Quiz{}, err
	}
	replaced := false
	for i := range qs {
		if qs[i].ID == q.ID {
			qs[i] = q
			replaced = true
			break
		}
	}
	if !replaced {
		qs = append(qs, q)
	}
	if err := r.SaveQuizzes(qs); err != nil {
		return Quiz{}, err
	}
	r.record(audit.EventQuizSaved, q.ID, q)
	return q, nil
}

// DeleteQuiz removes the quiz but leaves its attempts in place. Readers
// of attempt history must resolve the quiz id as lookup-or-missing,
// never as a hard join.
func (r *Repo) DeleteQuiz(id string) error {
	qs, err := r.Quizzes()
	if err != nil {
		return err
	}
	kept := qs[:0]
	for _, q := range qs {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if err := r.SaveQuizzes(kept); err != nil {
		return err
	}
	r.record(audit.EventQuizDeleted, id, nil)
	return nil
}

// SetQuizActive toggles student visibility. Returns false when the quiz
// does not exist.
func (r *Repo) SetQuizActive(id string, active bool) (Quiz, bool, error) {
	q, ok, err := r.QuizByID(id)
	if err != nil || !ok {
		return Quiz{}, ok, err
	}
	q.IsActive = active
	q, err = r.SaveQuiz(q)
	if err != nil {
		return Quiz{}, false, err
	}
	return q, true, nil
}

func (r *Repo) AttemptsByStudent(studentID string) ([]Attempt, error) {
	as, err := r.Attempts()
	if err != nil {
		return nil, err
	}
	out := []Attempt{}
	for _, a := range as {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out, nil
}

// SaveAttempt assigns a fresh id and appends. This is the sole write
// path for attempts; existing records are never touched.
func (r *Repo) SaveAttempt(a Attempt) (Attempt, error) {
	as, err := r.Attempts()
	if err != nil {
		return Attempt{}, err
	}
	a.ID = uuid.NewString()
	if err := r.SaveAttempts(append(as, a)); err != nil {
		return Attempt{}, err
	}
	r.record(audit.EventAttemptSubmitted, a.ID, a)
	return a, nil
}

func (r *Repo) record(typ, key string, payload any) {
	if r.audit == nil {
		return
	}
	// Audit is best-effort; a failed append must not fail the write
	// that already happened.
	_ = r.audit.Append(typ, key, payload)
}
