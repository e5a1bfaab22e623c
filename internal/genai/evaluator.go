package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abhinav086/ai-interview/internal/scoring"
	"github.com/abhinav086/ai-interview/pkg/model"
)

// ContentGenerator is the one capability the evaluator needs from the model
// client. Tests substitute a stub.
type ContentGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Evaluator asks the generative model for interview questions, per-answer
// evaluations, and the final report. Every response must embed the JSON
// shape the prompt demands; anything else is a hard error and callers fall
// back to local scoring.
type Evaluator struct {
	gen ContentGenerator
}

func NewEvaluator(gen ContentGenerator) *Evaluator {
	return &Evaluator{gen: gen}
}

type generatedQuestion struct {
	Question       string   `json:"question"`
	Difficulty     string   `json:"difficulty"`
	Category       string   `json:"category"`
	ExpectedPoints []string `json:"expectedPoints"`
}

// GenerateQuestions requests count questions on the given topic. Time limits
// are not taken from the model; the caller assigns them by position.
func (e *Evaluator) GenerateQuestions(ctx context.Context, topic string, count int) ([]model.Question, error) {
	prompt := fmt.Sprintf(`Generate %d technical interview questions about %s.
Requirements:
- 2 Easy questions (20 seconds to answer) - ask for one or two word answers
- 2 Medium questions (60 seconds to answer) - ask for one or two word answers
- 2 Hard questions (120 seconds to answer) - ask for one or two word answers
- Questions should be specific and require short answers (like MCQ)
- Mix of conceptual and practical questions
For each question, provide:
1. The question text
2. Difficulty level (Easy/Medium/Hard)
3. Specific category (e.g., "React Hooks", "Node.js Performance", etc.)
4. Expected key points in the answer (3-5 points)
Format your response as a JSON array with this structure:
[
  {
    "question": "question text",
    "difficulty": "Easy|Medium|Hard",
    "category": "specific category",
    "expectedPoints": ["point1", "point2", "point3"]
  }
]
Only return the JSON array, no additional text.`, count, topic)

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw, '[', ']')
	if err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(payload), &generated); err != nil {
		return nil, fmt.Errorf("parse question response: %w; raw response: %q", err, raw)
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}

	now := time.Now().UnixMilli()
	questions := make([]model.Question, len(generated))
	for i, g := range generated {
		questions[i] = model.Question{
			ID:             fmt.Sprintf("ai-q-%d-%d", now, i),
			Question:       g.Question,
			Difficulty:     model.Difficulty(g.Difficulty),
			Category:       g.Category,
			ExpectedPoints: g.ExpectedPoints,
		}
	}
	return questions, nil
}

// EvaluateAnswer scores one answer against its question and expected points.
// The returned score is clamped to [0, 100].
func (e *Evaluator) EvaluateAnswer(ctx context.Context, q model.Question, answer string, timeUsed int) (*model.AnswerEvaluation, error) {
	var points strings.Builder
	for i, p := range q.ExpectedPoints {
		fmt.Fprintf(&points, "%d. %s\n", i+1, p)
	}

	prompt := fmt.Sprintf(`Evaluate this technical interview answer:
Question: %s
Expected Key Points:
%s
Candidate's Answer: %s
Time Used: %d seconds out of %d seconds allowed
Evaluate based on:
1. Technical accuracy and correctness
2. Completeness (covered expected points)
3. Clarity and communication
4. Depth of understanding
5. Time management
Provide:
- Score out of 100
- Detailed feedback (2-3 sentences)
- 2-3 specific strengths
- 2-3 areas for improvement
Format as JSON:
{
  "score": number (0-100),
  "feedback": "detailed feedback text",
  "strengths": ["strength1", "strength2"],
  "improvements": ["improvement1", "improvement2"]
}
Only return the JSON object, no additional text.`, q.Question, points.String(), answer, timeUsed, q.TimeLimit)

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w", err)
	}

	var eval model.AnswerEvaluation
	if err := json.Unmarshal([]byte(payload), &eval); err != nil {
		return nil, fmt.Errorf("parse evaluation response: %w; raw response: %q", err, raw)
	}
	eval.Score = scoring.ClampScore(eval.Score)
	return &eval, nil
}

// GenerateReport produces the final scoring details from the full answer set.
func (e *Evaluator) GenerateReport(ctx context.Context, candidateName string, answers []model.InterviewAnswer) (*model.ScoringDetails, error) {
	var perf strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&perf, "\nQuestion %d: %s\nAnswer: %s\nScore: %d/100\nFeedback: %s\n---\n",
			i+1, a.Question, a.Answer, a.Score, a.Feedback)
	}

	prompt := fmt.Sprintf(`Generate a comprehensive interview evaluation report for %s.
Interview Performance:
%s
Provide:
1. Overall score (0-100)
2. Technical knowledge score (0-100)
3. Communication clarity score (0-100)
4. Problem-solving ability score (0-100)
5. Top 3-4 strengths
6. Top 3-4 areas for improvement
7. Hiring recommendation: "Strong Hire" | "Hire" | "No Hire" | "Strong No Hire"
Format as JSON:
{
  "overallScore": number,
  "technicalScore": number,
  "communicationScore": number,
  "problemSolvingScore": number,
  "strengths": ["strength1", "strength2", "strength3"],
  "improvements": ["improvement1", "improvement2", "improvement3"],
  "recommendation": "Strong Hire|Hire|No Hire|Strong No Hire"
}
Only return the JSON object, no additional text.`, candidateName, perf.String())

	raw, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := extractJSON(raw, '{', '}')
	if err != nil {
		return nil, fmt.Errorf("parse report response: %w", err)
	}

	var report struct {
		OverallScore        int      `json:"overallScore"`
		TechnicalScore      int      `json:"technicalScore"`
		CommunicationScore  int      `json:"communicationScore"`
		ProblemSolvingScore int      `json:"problemSolvingScore"`
		Strengths           []string `json:"strengths"`
		Improvements        []string `json:"improvements"`
		Recommendation      string   `json:"recommendation"`
	}
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("parse report response: %w; raw response: %q", err, raw)
	}

	return &model.ScoringDetails{
		OverallScore:        scoring.ClampScore(report.OverallScore),
		TechnicalScore:      scoring.ClampScore(report.TechnicalScore),
		CommunicationScore:  scoring.ClampScore(report.CommunicationScore),
		ProblemSolvingScore: scoring.ClampScore(report.ProblemSolvingScore),
		Strengths:           report.Strengths,
		Improvements:        report.Improvements,
		Recommendation:      model.Recommendation(report.Recommendation),
	}, nil
}

// extractJSON pulls the first open..close span out of a model reply, which
// may wrap the payload in prose or markdown code fences.
func extractJSON(raw string, open, close byte) (string, error) {
	start := strings.IndexByte(raw, open)
	end := strings.LastIndexByte(raw, close)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON %c...%c found in response", open, close)
	}
	return raw[start : end+1], nil
}
