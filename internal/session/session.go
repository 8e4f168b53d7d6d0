// Package session tracks the authenticated identity across restarts.
// The identity is kept on an injected Session value, not in package
// state, and is persisted under its own key in the same medium as the
// record collections.
package session

import (
	"encoding/json"

	"github.com/quizbox/quizbox/internal/kvstore"
	"github.com/quizbox/quizbox/internal/quiz"
)

// CurrentUserKey holds one serialized user record, or nothing.
const CurrentUserKey = "currentUser"

type Session struct {
	repo    *quiz.Repo
	store   kvstore.Store
	current *quiz.User
}

// New rehydrates any persisted identity. The stored record is trusted
// as-is; credentials are not re-checked on startup.
func New(repo *quiz.Repo, store kvstore.Store) (*Session, error) {
	s := &Session{repo: repo, store: store}
	raw, ok, err := store.Get(CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if ok && raw != "" {
		var u quiz.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			return nil, err
		}
		s.current = &u
	}
	return s, nil
}

// Login authenticates and makes the matched user current. On a miss the
// session is left untouched and ok is false; the caller surfaces
// "invalid credentials".
func (s *Session) Login(identifier, password string, role quiz.Role) (quiz.User, bool, error) {
	u, ok, err := s.repo.FindUserByCredentials(identifier, password, role)
	if err != nil || !ok {
		return quiz.User{}, false, err
	}
	if err := s.setCurrent(u); err != nil {
		return quiz.User{}, false, err
	}
	return u, true, nil
}

// Register creates a student account and logs it in. ok is false when
// the registration number is already taken.
func (s *Session) Register(name, registrationNumber, password string) (quiz.User, bool, error) {
	u, ok, err := s.repo.RegisterStudent(name, registrationNumber, password)
	if err != nil || !ok {
		return quiz.User{}, false, err
	}
	if err := s.setCurrent(u); err != nil {
		return quiz.User{}, false, err
	}
	return u, true, nil
}

// Logout clears the current identity and its persisted copy.
func (s *Session) Logout() error {
	s.current = nil
	return s.store.Delete(CurrentUserKey)
}

// Current returns the authenticated user, if any.
func (s *Session) Current() (quiz.User, bool) {
	if s.current == nil {
		return quiz.User{}, false
	}
	return *s.current, true
}

func (s *Session) setCurrent(u quiz.User) error {
	buf, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.store.Set(CurrentUserKey, string(buf)); err != nil {
		return err
	}
	s.current = &u
	return nil
}
