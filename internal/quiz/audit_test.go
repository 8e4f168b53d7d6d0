package quiz_test

import (
	"testing"

	"github.com/quizbox/quizbox/internal/audit"
	"github.com/quizbox/quizbox/internal/kvstore"
	"github.com/quizbox/quizbox/internal/quiz"
)

func TestRepoRecordsAuditEvents(t *testing.T) {
	store := kvstore.NewMemory()
	log := audit.NewLog(store)
	r := quiz.NewRepo(store, quiz.WithAudit(log))
	if err := quiz.Seed(r); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, ok, err := r.RegisterStudent("Carol", "S003", "pw"); err != nil || !ok {
		t.Fatalf("register: ok=%v err=%v", ok, err)
	}
	if _, err := r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student1"}); err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if err := r.DeleteQuiz("quiz2"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	events, err := log.Events()
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	want := []string{audit.EventUserRegistered, audit.EventAttemptSubmitted, audit.EventQuizDeleted}
	if len(events) != len(want) {
		t.Fatalf("want %d events, got %d: %v", len(want), len(events), events)
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Fatalf("event %d: got %q, want %q", i, events[i].Type, typ)
		}
	}
}
