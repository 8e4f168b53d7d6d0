package quiz

// Seed writes the demo accounts and sample quizzes for any collection
// that is not present yet. Idempotent: an existing collection, even an
// empty one, is left alone. This is sample data, not a migration.
func Seed(r *Repo) error {
	if _, ok, err := r.store.Get(UsersKey); err != nil {
		return err
	} else if !ok {
		if err := r.SaveUsers(seedUsers()); err != nil {
			return err
		}
	}
	if _, ok, err := r.store.Get(QuizzesKey); err != nil {
		return err
	} else if !ok {
		if err := r.SaveQuizzes(seedQuizzes()); err != nil {
			return err
		}
	}
	if _, ok, err := r.store.Get(AttemptsKey); err != nil {
		return err
	} else if !ok {
		if err := r.SaveAttempts([]Attempt{}); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers() []User {
	return []User{
		{ID: "admin1", Name: "Admin", Username: "admin", Password: "password", Role: RoleAdmin},
		{ID: "student1", Name: "Alice", RegistrationNumber: "S001", Password: "password", Role: RoleStudent},
		{ID: "student2", Name: "Bob", RegistrationNumber: "S002", Password: "password", Role: RoleStudent},
	}
}

func seedQuizzes() []Quiz {
	return []Quiz{
		{
			ID:          "quiz1",
			Title:       "React Fundamentals",
			Description: "Test your knowledge of core React concepts.",
			Duration:    10,
			IsActive:    true,
			Questions: []Question{
				{ID: "q1-1", QuestionText: "What is JSX?", Options: []string{"A JavaScript syntax extension", "A templating engine", "A CSS preprocessor", "A database"}, CorrectAnswerIndex: 0},
				{ID: "q1-2", QuestionText: "Which hook is used to manage state in a functional component?", Options: []string{"useEffect", "useState", "useContext", "useReducer"}, CorrectAnswerIndex: 1},
				{ID: "q1-3", QuestionText: "How do you pass data from a parent component to a child component?", Options: []string{"State", "Context", "Props", "Redux"}, CorrectAnswerIndex: 2},
			},
		},
		{
			ID:          "quiz2",
			Title:       "Advanced TypeScript",
			Description: "Test your knowledge of advanced TypeScript features.",
			Duration:    15,
			IsActive:    false,
			Questions: []Question{
				{ID: "q2-1", QuestionText: "What is a Generic in TypeScript?", Options: []string{"A type of class", "A way to create reusable components", "A feature for type-safe functions", "All of the above"}, CorrectAnswerIndex: 3},
				{ID: "q2-2", QuestionText: "What does the `keyof` operator do?", Options: []string{"Returns the type of a key", "Creates a union type of an object's keys", "Checks if a key exists", "Deletes a key"}, CorrectAnswerIndex: 1},
			},
		},
	}
}
