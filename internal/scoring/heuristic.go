// Package scoring implements the local, deterministic scoring path: a
// per-answer heuristic over answer length and expected keywords, and an
// aggregate report with technical, communication and problem-solving
// sub-scores. It is both the static-interview scorer and the fallback when
// the external evaluator fails.
package scoring

import (
	"math"
	"strings"
	"unicode"

	"github.com/abhinav086/ai-interview/pkg/model"
)

// Categories whose answers feed the technical sub-score.
var technicalCategories = map[string]bool{
	"JavaScript Fundamentals": true,
	"JavaScript Advanced":     true,
	"React Basics":            true,
	"React Performance":       true,
	"Node.js":                 true,
	"System Design":           true,
	"Algorithms":              true,
}

// Categories whose answers feed the problem-solving sub-score.
var problemSolvingCategories = map[string]bool{
	"System Design": true,
	"Algorithms":    true,
}

var fillerWords = []string{"um", "uh", "like", "you know", "basically", "actually"}

// ScoreAnswer scores a single answer: a base from answer length in four
// bands, plus up to 15 bonus points for the fraction of expected keywords
// present (case-insensitive substring match). Capped at 100.
func ScoreAnswer(answer string, expectedKeywords []string) (int, string) {
	trimmed := strings.TrimSpace(answer)

	var score int
	switch n := len(trimmed); {
	case n < 10:
		score = 20
	case n < 50:
		score = 40
	case n < 200:
		score = 70
	default:
		score = 85
	}

	if len(expectedKeywords) > 0 {
		lower := strings.ToLower(trimmed)
		matched := 0
		for _, kw := range expectedKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched++
			}
		}
		score += int(math.Round(15 * float64(matched) / float64(len(expectedKeywords))))
	}

	if score > 100 {
		score = 100
	}

	feedback := "Consider providing more detailed explanations in your answers."
	if len(strings.Fields(trimmed)) > 50 {
		feedback = "Good detailed answer with relevant information."
	}
	return score, feedback
}

// Report builds the aggregate scoring details from completed answers. Given
// identical answers it always produces identical output.
func Report(answers []model.InterviewAnswer, questions []model.Question) *model.ScoringDetails {
	technical := meanForCategories(answers, questions, technicalCategories)
	communication := communicationScore(answers)
	problemSolving := meanForCategories(answers, questions, problemSolvingCategories)
	if problemSolving < 0 {
		problemSolving = meanScore(answers)
	}
	if technical < 0 {
		technical = meanScore(answers)
	}

	overall := int(math.Round(float64(technical+communication+problemSolving) / 3))

	return &model.ScoringDetails{
		OverallScore:        overall,
		TechnicalScore:      technical,
		CommunicationScore:  communication,
		ProblemSolvingScore: problemSolving,
		Strengths:           strengthsFor(overall),
		Improvements:        improvementsFor(overall),
		Recommendation:      recommend(overall),
	}
}

// FallbackReport is the report used when the external evaluator fails: the
// same aggregate sub-scores, fixed descriptive text, and the simpler hiring
// threshold the AI path's fallback uses.
func FallbackReport(answers []model.InterviewAnswer, questions []model.Question) *model.ScoringDetails {
	details := Report(answers, questions)
	details.Strengths = []string{"Completed all interview questions"}
	details.Improvements = []string{"Continue developing technical skills"}
	if details.OverallScore >= 70 {
		details.Recommendation = model.Hire
	} else {
		details.Recommendation = model.NoHire
	}
	return details
}

// ClampScore bounds an externally supplied score to [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func recommend(overall int) model.Recommendation {
	switch {
	case overall >= 85:
		return model.StrongHire
	case overall >= 70:
		return model.Hire
	case overall >= 50:
		return model.NoHire
	default:
		return model.StrongNoHire
	}
}

// meanForCategories averages per-answer scores for questions in the given
// category set; -1 when no answer falls in it.
func meanForCategories(answers []model.InterviewAnswer, questions []model.Question, categories map[string]bool) int {
	byID := make(map[string]string, len(questions))
	for _, q := range questions {
		byID[q.ID] = q.Category
	}

	sum, n := 0, 0
	for _, a := range answers {
		if categories[byID[a.QuestionID]] {
			sum += a.Score
			n++
		}
	}
	if n == 0 {
		return -1
	}
	return int(math.Round(float64(sum) / float64(n)))
}

func meanScore(answers []model.InterviewAnswer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, a := range answers {
		sum += a.Score
	}
	return int(math.Round(float64(sum) / float64(len(answers))))
}

// communicationScore rewards each answer for word count in [20,150],
// multi-sentence structure, capitalization, terminal punctuation, and the
// absence of filler words, then averages the per-answer totals.
func communicationScore(answers []model.InterviewAnswer) int {
	if len(answers) == 0 {
		return 0
	}

	total := 0
	for _, a := range answers {
		text := strings.TrimSpace(a.Answer)
		score := 0

		words := len(strings.Fields(text))
		if words >= 20 && words <= 150 {
			score += 30
		}
		if countSentences(text) >= 2 {
			score += 20
		}
		if text != "" && unicode.IsUpper([]rune(text)[0]) {
			score += 15
		}
		if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
			score += 15
		}
		if !containsFiller(text) {
			score += 20
		}
		if score > 100 {
			score = 100
		}
		total += score
	}
	return int(math.Round(float64(total) / float64(len(answers))))
}

func countSentences(text string) int {
	n := 0
	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// containsFiller treats an empty answer as filler so it earns no bonus.
func containsFiller(text string) bool {
	if text == "" {
		return true
	}
	lower := " " + strings.ToLower(text) + " "
	for _, filler := range fillerWords {
		if strings.Contains(lower, " "+filler+" ") {
			return true
		}
	}
	return false
}
