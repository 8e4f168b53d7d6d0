package quiz_test

import (
	"testing"

	"github.com/quizbox/quizbox/internal/kvstore"
	"github.com/quizbox/quizbox/internal/quiz"
)

func seededRepo(t *testing.T) *quiz.Repo {
	t.Helper()
	r := quiz.NewRepo(kvstore.NewMemory())
	if err := quiz.Seed(r); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return r
}

func TestSeedIsIdempotent(t *testing.T) {
	s := kvstore.NewMemory()
	r := quiz.NewRepo(s)
	if err := quiz.Seed(r); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	// mutate, then seed again: nothing may be re-written
	if _, ok, err := r.RegisterStudent("Carol", "S003", "pw"); err != nil || !ok {
		t.Fatalf("register: ok=%v err=%v", ok, err)
	}
	if err := quiz.Seed(r); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	users, err := r.Users()
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(users) != 4 {
		t.Fatalf("re-seed clobbered users: got %d", len(users))
	}
	quizzes, _ := r.Quizzes()
	if len(quizzes) != 2 {
		t.Fatalf("want 2 seeded quizzes, got %d", len(quizzes))
	}
}

func TestFindUserByCredentials(t *testing.T) {
	r := seededRepo(t)

	u, ok, err := r.FindUserByCredentials("admin", "password", quiz.RoleAdmin)
	if err != nil || !ok {
		t.Fatalf("admin login: ok=%v err=%v", ok, err)
	}
	if u.ID != "admin1" || u.Role != quiz.RoleAdmin {
		t.Fatalf("wrong user: %+v", u)
	}

	if _, ok, _ := r.FindUserByCredentials("S001", "password", quiz.RoleStudent); !ok {
		t.Fatal("student login should succeed")
	}
	if _, ok, _ := r.FindUserByCredentials("S001", "wrong", quiz.RoleStudent); ok {
		t.Fatal("wrong password must miss")
	}
	// identifier exists, but under the other role
	if _, ok, _ := r.FindUserByCredentials("admin", "password", quiz.RoleStudent); ok {
		t.Fatal("admin username must not log in as student")
	}
}

func TestFindUserByCredentialsEmptyCollection(t *testing.T) {
	r := quiz.NewRepo(kvstore.NewMemory())
	if _, ok, err := r.FindUserByCredentials("S001", "password", quiz.RoleStudent); err != nil || ok {
		t.Fatalf("empty collection: ok=%v err=%v", ok, err)
	}
}

func TestRegisterStudentRejectsDuplicate(t *testing.T) {
	r := seededRepo(t)

	// S001 is seeded
	if _, ok, err := r.RegisterStudent("Mallory", "S001", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	} else if ok {
		t.Fatal("duplicate registration number must be rejected")
	}
	users, _ := r.Users()
	if len(users) != 3 {
		t.Fatalf("user count changed on rejected registration: %d", len(users))
	}

	u, ok, err := r.RegisterStudent("Carol", "S003", "pw")
	if err != nil || !ok {
		t.Fatalf("register: ok=%v err=%v", ok, err)
	}
	if u.ID == "" || u.Role != quiz.RoleStudent {
		t.Fatalf("bad new user: %+v", u)
	}
	// second call with the same number: exactly one persisted user
	if _, ok, _ := r.RegisterStudent("Carol again", "S003", "pw"); ok {
		t.Fatal("second registration must return none")
	}
	users, _ = r.Users()
	count := 0
	for _, x := range users {
		if x.RegistrationNumber == "S003" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one S003, got %d", count)
	}
}

func TestQuizLookups(t *testing.T) {
	r := seededRepo(t)

	q, ok, err := r.QuizByID("quiz1")
	if err != nil || !ok {
		t.Fatalf("quiz1: ok=%v err=%v", ok, err)
	}
	if len(q.Questions) != 3 || !q.IsActive {
		t.Fatalf("unexpected quiz1: %+v", q)
	}
	if _, ok, _ := r.QuizByID("nope"); ok {
		t.Fatal("missing quiz must return none")
	}

	active, err := r.ActiveQuizzes()
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 || active[0].ID != "quiz1" {
		t.Fatalf("want only quiz1 active, got %v", active)
	}
}

func TestSaveQuizUpsert(t *testing.T) {
	r := seededRepo(t)

	created, err := r.SaveQuiz(quiz.Quiz{
		Title:    "Go Basics",
		Duration: 5,
		Questions: []quiz.Question{
			{QuestionText: "Zero value of int?", Options: []string{"0", "nil"}, CorrectAnswerIndex: 0},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Questions[0].ID == "" {
		t.Fatalf("ids not assigned: %+v", created)
	}

	created.Title = "Go Basics, revised"
	if _, err := r.SaveQuiz(created); err != nil {
		t.Fatalf("edit: %v", err)
	}
	qs, _ := r.Quizzes()
	if len(qs) != 3 {
		t.Fatalf("edit must replace, not append: %d quizzes", len(qs))
	}
	got, _, _ := r.QuizByID(created.ID)
	if got.Title != "Go Basics, revised" {
		t.Fatalf("edit not persisted: %q", got.Title)
	}
}

func TestSaveQuizValidatesAnswerIndex(t *testing.T) {
	r := seededRepo(t)
	_, err := r.SaveQuiz(quiz.Quiz{
		Title: "bad",
		Questions: []quiz.Question{
			{QuestionText: "q", Options: []string{"a", "b"}, CorrectAnswerIndex: 2},
		},
	})
	if err == nil {
		t.Fatal("out-of-range correct answer index must be rejected")
	}
}

func TestSetQuizActive(t *testing.T) {
	r := seededRepo(t)
	q, ok, err := r.SetQuizActive("quiz2", true)
	if err != nil || !ok || !q.IsActive {
		t.Fatalf("activate: ok=%v err=%v q=%+v", ok, err, q)
	}
	active, _ := r.ActiveQuizzes()
	if len(active) != 2 {
		t.Fatalf("want 2 active quizzes, got %d", len(active))
	}
	if _, ok, _ := r.SetQuizActive("nope", true); ok {
		t.Fatal("missing quiz must return none")
	}
}

func TestDeleteQuizLeavesAttemptsOrphaned(t *testing.T) {
	r := seededRepo(t)
	if _, err := r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student1", Score: 80}); err != nil {
		t.Fatalf("save attempt: %v", err)
	}
	if err := r.DeleteQuiz("quiz1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := r.QuizByID("quiz1"); ok {
		t.Fatal("quiz still present")
	}
	// the attempt stays, pointing at a missing quiz id
	as, _ := r.AttemptsByStudent("student1")
	if len(as) != 1 || as[0].QuizID != "quiz1" {
		t.Fatalf("orphaned attempt lost: %v", as)
	}
}

func TestSaveAttemptAppendsOnly(t *testing.T) {
	r := seededRepo(t)

	a1, err := r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student1", Score: 40})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a1.ID == "" {
		t.Fatal("id not assigned")
	}
	a2, err := r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student1", Score: 90})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if a2.ID == a1.ID {
		t.Fatal("ids must be unique")
	}
	as, _ := r.Attempts()
	if len(as) != 2 {
		t.Fatalf("want 2 attempts, got %d", len(as))
	}
	if as[0].ID != a1.ID || as[0].Score != 40 {
		t.Fatalf("earlier attempt mutated: %+v", as[0])
	}
}

func TestAttemptsByStudentFilters(t *testing.T) {
	r := seededRepo(t)
	_, _ = r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student1"})
	_, _ = r.SaveAttempt(quiz.Attempt{QuizID: "quiz1", StudentID: "student2"})
	as, err := r.AttemptsByStudent("student1")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(as) != 1 || as[0].StudentID != "student1" {
		t.Fatalf("filter wrong: %v", as)
	}
}

func TestStudents(t *testing.T) {
	r := seededRepo(t)
	st, err := r.Students()
	if err != nil {
		t.Fatalf("students: %v", err)
	}
	if len(st) != 2 {
		t.Fatalf("want 2 students, got %d", len(st))
	}
	for _, u := range st {
		if u.Role != quiz.RoleStudent {
			t.Fatalf("non-student in list: %+v", u)
		}
	}
}
