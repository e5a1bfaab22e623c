package interview

import "github.com/abhinav086/ai-interview/pkg/model"

// Positional time limits for AI-generated questions. The model's own
// difficulty labels do not set the clock; position does.
var aiTimeLimits = []int{30, 30, 60, 60, 120, 120}

const aiTimeLimitFallback = 60

func aiTimeLimit(index int) int {
	if index < len(aiTimeLimits) {
		return aiTimeLimits[index]
	}
	return aiTimeLimitFallback
}

// staticQuestions is the fixed six-question bank used when the AI path is
// disabled or unconfigured.
var staticQuestions = []model.Question{
	{
		ID:               "easy-1",
		Question:         "What is the difference between let, const, and var in JavaScript?",
		Difficulty:       model.DifficultyEasy,
		TimeLimit:        20,
		Category:         "JavaScript Fundamentals",
		ExpectedKeywords: []string{"scope", "hoisting", "reassignment", "block scope"},
	},
	{
		ID:               "easy-2",
		Question:         "Explain what React props are and how they work.",
		Difficulty:       model.DifficultyEasy,
		TimeLimit:        20,
		Category:         "React Basics",
		ExpectedKeywords: []string{"properties", "parent", "child", "immutable", "data flow"},
	},
	{
		ID:               "medium-1",
		Question:         "How would you optimize the performance of a React application?",
		Difficulty:       model.DifficultyMedium,
		TimeLimit:        60,
		Category:         "React Performance",
		ExpectedKeywords: []string{"memoization", "lazy loading", "code splitting", "virtual DOM"},
	},
	{
		ID:               "medium-2",
		Question:         "Explain the concept of closures in JavaScript and provide an example.",
		Difficulty:       model.DifficultyMedium,
		TimeLimit:        60,
		Category:         "JavaScript Advanced",
		ExpectedKeywords: []string{"lexical scope", "inner function", "outer function", "variable access"},
	},
	{
		ID:               "hard-1",
		Question:         "Design a scalable system architecture for a real-time chat application with millions of users.",
		Difficulty:       model.DifficultyHard,
		TimeLimit:        120,
		Category:         "System Design",
		ExpectedKeywords: []string{"microservices", "load balancing", "websockets", "database sharding"},
	},
	{
		ID:               "hard-2",
		Question:         "Implement a function to find the longest palindromic substring in a string with optimal time complexity.",
		Difficulty:       model.DifficultyHard,
		TimeLimit:        120,
		Category:         "Algorithms",
		ExpectedKeywords: []string{"dynamic programming", "expand around center", "time complexity", "space complexity"},
	},
}

// StaticQuestions returns a copy of the fixed question bank.
func StaticQuestions() []model.Question {
	out := make([]model.Question, len(staticQuestions))
	copy(out, staticQuestions)
	return out
}
