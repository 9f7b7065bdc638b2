package model

// Question is a single trivia question belonging to a category.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestionRequest is the payload for adding a new question.
// Category and Difficulty are pointers so a missing field is
// distinguishable from a zero value at the binding boundary.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required,min=1,max=2000"`
	Answer     string `json:"answer" binding:"required,min=1,max=2000"`
	Category   *int   `json:"category" binding:"required,gt=0"`
	Difficulty *int   `json:"difficulty" binding:"required,gte=1,lte=5"`
}

// SearchRequest is the payload for substring search over question text.
// An empty or absent term is a substring of every string, so it matches
// all questions rather than being rejected.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuizCategory selects the draw pool for a quiz round. ID 0 means all
// categories; Type is the display name clients echo back and is ignored
// server-side.
type QuizCategory struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuizRequest is the payload for drawing the next quiz question. Both
// fields are required; PreviousQuestions may be empty but not absent.
type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}
