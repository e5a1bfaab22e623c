package scoring

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abhinav086/ai-interview/pkg/model"
)

func TestScoreAnswerLengthBands(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		want   int
	}{
		{"empty", "", 20},
		{"tiny", "short", 20},
		{"brief", "a somewhat longer answer text", 40},
		{"medium", strings.Repeat("words and more words ", 5), 70},
		{"long", strings.Repeat("a thorough explanation of the concept ", 8), 85},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := ScoreAnswer(tc.answer, nil)
			if got != tc.want {
				t.Fatalf("ScoreAnswer(%q) = %d, want %d", tc.answer, got, tc.want)
			}
		})
	}
}

func TestScoreAnswerKeywordBonus(t *testing.T) {
	keywords := []string{"scope", "hoisting", "reassignment", "block scope"}

	answer := "let and const are block scoped, var is hoisted to function scope"
	got, _ := ScoreAnswer(answer, keywords)
	// Band 70 (length 64) plus half the keywords matched: "scope" and
	// "block scope" but not "hoisting" or "reassignment".
	want := 70 + 8
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestScoreAnswerCappedAt100(t *testing.T) {
	answer := strings.Repeat("scope hoisting reassignment block scope explained thoroughly ", 6)
	got, _ := ScoreAnswer(answer, []string{"scope", "hoisting"})
	if got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
}

func TestScoreAnswerBounds(t *testing.T) {
	for _, answer := range []string{"", "x", strings.Repeat("verbose ", 100)} {
		score, _ := ScoreAnswer(answer, []string{"kw"})
		if score < 0 || score > 100 {
			t.Fatalf("score %d out of bounds for %q", score, answer)
		}
	}
}

func sixEmptyAnswers() ([]model.InterviewAnswer, []model.Question) {
	questions := []model.Question{
		{ID: "q1", Category: "JavaScript Fundamentals"},
		{ID: "q2", Category: "React Basics"},
		{ID: "q3", Category: "React Performance"},
		{ID: "q4", Category: "JavaScript Advanced"},
		{ID: "q5", Category: "System Design"},
		{ID: "q6", Category: "Algorithms"},
	}
	answers := make([]model.InterviewAnswer, len(questions))
	for i, q := range questions {
		score, feedback := ScoreAnswer("", nil)
		answers[i] = model.InterviewAnswer{
			QuestionID: q.ID,
			Answer:     "",
			Score:      score,
			Feedback:   feedback,
			Timestamp:  time.Now(),
		}
	}
	return answers, questions
}

func TestReportAllEmptyAnswers(t *testing.T) {
	answers, questions := sixEmptyAnswers()
	details := Report(answers, questions)

	for _, a := range answers {
		if a.Score > 20 {
			t.Fatalf("empty answer scored above the lowest band: %d", a.Score)
		}
	}
	if details.Recommendation != model.StrongNoHire {
		t.Fatalf("expected Strong No Hire, got %s", details.Recommendation)
	}
	if details.OverallScore > 20 {
		t.Fatalf("expected overall in the lowest band, got %d", details.OverallScore)
	}
}

func TestReportIdempotent(t *testing.T) {
	answers, questions := sixEmptyAnswers()
	first := Report(answers, questions)
	second := Report(answers, questions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical answers produced different reports:\n%+v\n%+v", first, second)
	}
}

func TestRecommendationThresholds(t *testing.T) {
	cases := []struct {
		overall int
		want    model.Recommendation
	}{
		{85, model.StrongHire},
		{84, model.Hire},
		{70, model.Hire},
		{69, model.NoHire},
		{50, model.NoHire},
		{49, model.StrongNoHire},
		{0, model.StrongNoHire},
	}
	for _, tc := range cases {
		if got := recommend(tc.overall); got != tc.want {
			t.Fatalf("recommend(%d) = %s, want %s", tc.overall, got, tc.want)
		}
	}
}

func TestCommunicationScore(t *testing.T) {
	polished := "Closures capture their lexical scope so inner functions keep access to outer variables. " +
		"This enables data privacy and factory patterns. It is a core JavaScript concept worth mastering."
	answers := []model.InterviewAnswer{{Answer: polished}}
	// Word count in range, multiple sentences, capitalized, terminal
	// punctuation, no filler words: full marks.
	if got := communicationScore(answers); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}

	sloppy := []model.InterviewAnswer{{Answer: "um closures are like functions"}}
	if got := communicationScore(sloppy); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	// An empty answer earns nothing, including the no-filler bonus.
	empty := []model.InterviewAnswer{{Answer: "   "}}
	if got := communicationScore(empty); got != 0 {
		t.Fatalf("expected 0 for an empty answer, got %d", got)
	}
}

func TestFallbackReportUsesSimplerThreshold(t *testing.T) {
	answers, questions := sixEmptyAnswers()
	details := FallbackReport(answers, questions)
	if details.Recommendation != model.NoHire {
		t.Fatalf("expected No Hire from fallback thresholds, got %s", details.Recommendation)
	}
	if len(details.Strengths) == 0 || len(details.Improvements) == 0 {
		t.Fatalf("fallback report must carry fixed feedback text")
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(-5); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampScore(140); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := ClampScore(73); got != 73 {
		t.Fatalf("expected 73, got %d", got)
	}
}
