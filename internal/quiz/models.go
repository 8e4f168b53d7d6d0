// Package quiz holds the record types and the data-access layer for the
// three persisted collections: users, quizzes and attempts.
package quiz

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User is an identity record. Students carry a registration number,
// admins a username; the unused identifier is omitted from storage.
// Passwords are stored as supplied; comparison goes through a Verifier
// so a hashing strategy can be swapped in without touching callers.
type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Username           string `json:"username,omitempty"`
	Password           string `json:"password,omitempty"`
	Role               Role   `json:"role"`
}

type Question struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // minutes
	IsActive    bool       `json:"isActive"`
	Questions   []Question `json:"questions"`
}

// Attempt is an immutable historical record of one scored submission.
// Answers align index-for-index with the quiz's question list at attempt
// time; a nil element means the question was left unanswered. Timestamps
// are epoch milliseconds.
type Attempt struct {
	ID        string  `json:"id"`
	QuizID    string  `json:"quizId"`
	StudentID string  `json:"studentId"`
	StartTime int64   `json:"startTime"`
	EndTime   int64   `json:"endTime"`
	Score     float64 `json:"score"` // percentage, 0-100
	Answers   []*int  `json:"answers"`
}
