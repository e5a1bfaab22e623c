package genai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhinav086/ai-interview/pkg/model"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const questionsJSON = `[
  {"question": "What does useEffect do?", "difficulty": "Easy", "category": "React Hooks", "expectedPoints": ["side effects", "dependency array"]},
  {"question": "Explain the event loop.", "difficulty": "Medium", "category": "Node.js Performance", "expectedPoints": ["call stack", "task queue", "microtasks"]}
]`

func TestGenerateQuestionsParsesPlainJSON(t *testing.T) {
	gen := &stubGenerator{reply: questionsJSON}
	e := NewEvaluator(gen)

	questions, err := e.GenerateQuestions(context.Background(), "React, Node.js", 2)
	if err != nil {
		t.Fatalf("generate questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	q := questions[0]
	if q.Question != "What does useEffect do?" {
		t.Fatalf("unexpected question text: %q", q.Question)
	}
	if q.Difficulty != model.DifficultyEasy {
		t.Fatalf("unexpected difficulty: %q", q.Difficulty)
	}
	if q.Category != "React Hooks" {
		t.Fatalf("unexpected category: %q", q.Category)
	}
	if len(q.ExpectedPoints) != 2 {
		t.Fatalf("expected points not carried over: %v", q.ExpectedPoints)
	}
	if q.ID == "" || questions[1].ID == q.ID {
		t.Fatalf("questions must get distinct non-empty ids: %q vs %q", q.ID, questions[1].ID)
	}
	if q.TimeLimit != 0 {
		t.Fatalf("time limits are assigned by the caller, got %d", q.TimeLimit)
	}

	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "React, Node.js") {
		t.Fatalf("prompt should carry the topic, got %q", gen.prompts)
	}
}

func TestGenerateQuestionsParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{reply: "Here are your questions:\n```json\n" + questionsJSON + "\n```\nGood luck!"}
	e := NewEvaluator(gen)

	questions, err := e.GenerateQuestions(context.Background(), "React", 2)
	if err != nil {
		t.Fatalf("generate questions from fenced reply: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestGenerateQuestionsRejectsBadReplies(t *testing.T) {
	cases := []struct {
		name  string
		reply string
	}{
		{"prose only", "I cannot answer that."},
		{"empty array", "[]"},
		{"malformed json", "[{\"question\": }]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEvaluator(&stubGenerator{reply: tc.reply})
			if _, err := e.GenerateQuestions(context.Background(), "React", 2); err == nil {
				t.Fatalf("expected an error for reply %q", tc.reply)
			}
		})
	}
}

func TestGenerateQuestionsPropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("upstream unavailable")
	e := NewEvaluator(&stubGenerator{err: wantErr})
	if _, err := e.GenerateQuestions(context.Background(), "React", 2); !errors.Is(err, wantErr) {
		t.Fatalf("expected the generator error back, got %v", err)
	}
}

func TestEvaluateAnswerClampsScore(t *testing.T) {
	gen := &stubGenerator{reply: `{"score": 140, "feedback": "Excellent.", "strengths": ["s"], "improvements": ["i"]}`}
	e := NewEvaluator(gen)

	q := model.Question{Question: "Explain closures.", TimeLimit: 60, ExpectedPoints: []string{"lexical scope"}}
	eval, err := e.EvaluateAnswer(context.Background(), q, "an answer", 30)
	if err != nil {
		t.Fatalf("evaluate answer: %v", err)
	}
	if eval.Score != 100 {
		t.Fatalf("score should clamp to 100, got %d", eval.Score)
	}
	if eval.Feedback != "Excellent." {
		t.Fatalf("unexpected feedback: %q", eval.Feedback)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "Explain closures.") || !strings.Contains(prompt, "30 seconds out of 60 seconds") {
		t.Fatalf("prompt missing question or timing: %q", prompt)
	}
}

func TestEvaluateAnswerRejectsProse(t *testing.T) {
	e := NewEvaluator(&stubGenerator{reply: "The answer was fine."})
	q := model.Question{Question: "Q?", TimeLimit: 20}
	if _, err := e.EvaluateAnswer(context.Background(), q, "a", 5); err == nil {
		t.Fatalf("expected an error for a prose reply")
	}
}

func TestGenerateReportParsesAndClamps(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + `{
  "overallScore": 82,
  "technicalScore": 110,
  "communicationScore": -5,
  "problemSolvingScore": 75,
  "strengths": ["clear explanations", "solid fundamentals"],
  "improvements": ["system design depth"],
  "recommendation": "Hire"
}` + "\n```"}
	e := NewEvaluator(gen)

	answers := []model.InterviewAnswer{
		{Question: "Q1", Answer: "A1", Score: 80, Feedback: "good"},
	}
	report, err := e.GenerateReport(context.Background(), "Jane Doe", answers)
	if err != nil {
		t.Fatalf("generate report: %v", err)
	}
	if report.OverallScore != 82 {
		t.Fatalf("overall = %d, want 82", report.OverallScore)
	}
	if report.TechnicalScore != 100 || report.CommunicationScore != 0 {
		t.Fatalf("scores should clamp to [0,100], got technical=%d communication=%d",
			report.TechnicalScore, report.CommunicationScore)
	}
	if report.Recommendation != model.Hire {
		t.Fatalf("recommendation = %q, want Hire", report.Recommendation)
	}
	if len(report.Strengths) != 2 || len(report.Improvements) != 1 {
		t.Fatalf("lists not carried over: %v / %v", report.Strengths, report.Improvements)
	}

	prompt := gen.prompts[0]
	if !strings.Contains(prompt, "Jane Doe") || !strings.Contains(prompt, "Question 1: Q1") {
		t.Fatalf("prompt missing candidate or answer summary: %q", prompt)
	}
}

func TestExtractJSONSpans(t *testing.T) {
	got, err := extractJSON(`prefix {"a": {"b": 1}} suffix`, '{', '}')
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != `{"a": {"b": 1}}` {
		t.Fatalf("extracted %q", got)
	}
	if _, err := extractJSON("no payload here", '{', '}'); err == nil {
		t.Fatalf("expected an error when no braces present")
	}
}
