package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

type Question struct {
	ID         string     `json:"id"`
	Question   string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	TimeLimit  int        `json:"time_limit"`
	Category   string     `json:"category"`

	// ExpectedKeywords drives heuristic scoring (static bank); ExpectedPoints
	// drives AI evaluation (generated questions). A question carries one or
	// the other.
	ExpectedKeywords []string `json:"expected_keywords,omitempty"`
	ExpectedPoints   []string `json:"expected_points,omitempty"`
}

// AnswerEvaluation is the per-answer verdict from the external evaluator.
type AnswerEvaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
