// Package interview drives a candidate through the fixed progression:
// resume upload, contact info collection, timed questions, completion. The
// engine owns every status transition; handlers only call into it.
package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhinav086/ai-interview/internal/resume"
	"github.com/abhinav086/ai-interview/internal/scoring"
	"github.com/abhinav086/ai-interview/internal/store"
	"github.com/abhinav086/ai-interview/pkg/model"
)

var (
	// ErrInvalidTransition means the requested action is not legal in the
	// candidate's current stage.
	ErrInvalidTransition = errors.New("action not allowed in current interview stage")

	// ErrQuestionGeneration wraps evaluator failures at start time. The
	// candidate stays ready; the caller surfaces the error and may retry
	// manually.
	ErrQuestionGeneration = errors.New("failed to generate interview questions")
)

const expiredAnswerText = "(No answer provided - time expired)"
const expiredFeedbackText = "Time expired without providing an answer."

// Evaluator is the narrow external-service interface: question generation,
// per-answer evaluation, final report. The heuristic path and the Gemini
// client are interchangeable behind it.
type Evaluator interface {
	GenerateQuestions(ctx context.Context, topic string, count int) ([]model.Question, error)
	EvaluateAnswer(ctx context.Context, q model.Question, answer string, timeUsed int) (*model.AnswerEvaluation, error)
	GenerateReport(ctx context.Context, candidateName string, answers []model.InterviewAnswer) (*model.ScoringDetails, error)
}

// Engine mutates candidate records through the store, one transition at a
// time. With a nil evaluator it runs the static question bank and heuristic
// scoring end to end.
type Engine struct {
	store         *store.Store
	evaluator     Evaluator
	useAI         bool
	questionCount int
	logger        *zap.Logger
}

func NewEngine(s *store.Store, evaluator Evaluator, useAI bool, questionCount int, logger *zap.Logger) *Engine {
	if evaluator == nil {
		useAI = false
	}
	return &Engine{
		store:         s,
		evaluator:     evaluator,
		useAI:         useAI,
		questionCount: questionCount,
		logger:        logger,
	}
}

// CreateCandidate turns a parsed resume into a pending candidate. Fields the
// ingest heuristics missed are queued for chat collection, and the first
// prompt is appended immediately.
func (e *Engine) CreateCandidate(ctx context.Context, parsed *resume.Parsed) (*model.Candidate, error) {
	now := time.Now()
	cand := &model.Candidate{
		ID:               uuid.NewString(),
		Name:             parsed.Name,
		Email:            parsed.Email,
		Phone:            parsed.Phone,
		ResumeText:       parsed.Text,
		Status:           model.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
		MissingFields:    parsed.MissingFields(),
		ChatHistory:      []model.ChatMessage{},
		InterviewAnswers: []model.InterviewAnswer{},
	}

	if len(cand.MissingFields) > 0 {
		appendBot(cand, fmt.Sprintf("Please provide your %s.", cand.MissingFields[0]))
	} else {
		appendBot(cand, "Perfect! We have all the information we need. Let's begin the interview. Click 'Start Interview' when you're ready.")
	}

	if err := e.store.Create(ctx, cand); err != nil {
		return nil, err
	}
	e.logger.Sugar().Infow("candidate created",
		"candidate_id", cand.ID, "missing_fields", cand.MissingFields)
	return cand, nil
}

// HandleMessage consumes one user chat message during info collection. The
// message fills the first missing field; the bot acknowledges and either
// prompts for the next field or offers the start action.
func (e *Engine) HandleMessage(ctx context.Context, id, content string) (*model.Candidate, error) {
	return e.store.Update(ctx, id, func(c *model.Candidate) error {
		if c.Status != model.StatusPending || len(c.MissingFields) == 0 {
			return ErrInvalidTransition
		}

		appendMessage(c, model.MessageUser, content)

		switch c.MissingFields[0] {
		case model.FieldName:
			c.Name = content
		case model.FieldEmail:
			c.Email = content
		case model.FieldPhone:
			c.Phone = content
		}
		c.MissingFields = c.MissingFields[1:]

		if len(c.MissingFields) > 0 {
			appendBot(c, fmt.Sprintf("Thank you! Now, please provide your %s.", c.MissingFields[0]))
		} else {
			appendBot(c, "Perfect! We have all the information we need. Let's begin the interview. Click 'Start Interview' when you're ready.")
		}
		c.UpdatedAt = time.Now()
		return nil
	})
}

// Start assigns the question set and moves the candidate to in-progress. An
// evaluator failure leaves the candidate untouched and ready, with no
// automatic retry.
func (e *Engine) Start(ctx context.Context, id string) (*model.Candidate, error) {
	cand, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if cand.Status != model.StatusPending || len(cand.MissingFields) > 0 {
		return nil, ErrInvalidTransition
	}

	questions, err := e.buildQuestions(ctx, cand)
	if err != nil {
		e.logger.Sugar().Errorw("question generation failed", "candidate_id", id, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrQuestionGeneration, err)
	}

	return e.store.Update(ctx, id, func(c *model.Candidate) error {
		if c.Status != model.StatusPending || len(c.MissingFields) > 0 {
			return ErrInvalidTransition
		}
		now := time.Now()
		first := questions[0].TimeLimit

		c.Status = model.StatusInProgress
		c.Questions = questions
		c.CurrentQuestionIndex = 0
		c.TimeRemaining = &first
		c.InterviewStartTime = &now
		c.UpdatedAt = now

		appendBot(c, fmt.Sprintf(
			"Welcome to your technical interview, %s! I've prepared %d questions tailored based on your resume. Each question has a time limit. Let's start with question 1:\n\n%s",
			c.Name, len(questions), questions[0].Question))
		return nil
	})
}

func (e *Engine) buildQuestions(ctx context.Context, cand *model.Candidate) ([]model.Question, error) {
	if !e.useAI {
		return StaticQuestions(), nil
	}

	topics := resume.ExtractTopics(cand.ResumeText)
	topic := resume.TopicString(topics)
	e.logger.Sugar().Infow("generating questions", "candidate_id", cand.ID, "topic", topic)

	questions, err := e.evaluator.GenerateQuestions(ctx, topic, e.questionCount)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].TimeLimit = aiTimeLimit(i)
	}
	return questions, nil
}

// SubmitAnswer records the user's answer to the current question, scores it,
// and advances the interview. timeRemaining is the countdown value captured
// at submission; the UI pauses its timer while scoring is in flight.
func (e *Engine) SubmitAnswer(ctx context.Context, id, answer string, timeRemaining int) (*model.Candidate, error) {
	cand, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	if cand.Status != model.StatusInProgress {
		return nil, ErrInvalidTransition
	}
	question := cand.CurrentQuestion()
	if question == nil {
		return nil, ErrInvalidTransition
	}

	timeUsed := question.TimeLimit - timeRemaining
	if timeUsed < 0 {
		timeUsed = 0
	}
	if timeUsed > question.TimeLimit {
		timeUsed = question.TimeLimit
	}

	score, feedback := e.scoreAnswer(ctx, *question, answer, timeUsed)

	cand, err = e.store.Update(ctx, id, func(c *model.Candidate) error {
		if c.Status != model.StatusInProgress || c.CurrentQuestionIndex != len(c.InterviewAnswers) {
			return ErrInvalidTransition
		}
		q := c.CurrentQuestion()
		if q == nil || q.ID != question.ID {
			return ErrInvalidTransition
		}

		appendMessage(c, model.MessageUser, answer)
		c.InterviewAnswers = append(c.InterviewAnswers, model.InterviewAnswer{
			QuestionID: q.ID,
			Question:   q.Question,
			Answer:     answer,
			TimeUsed:   timeUsed,
			Score:      score,
			Feedback:   feedback,
			Timestamp:  time.Now(),
		})
		c.CurrentQuestionIndex++
		e.advance(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e.finalizeScore(ctx, cand)
}

// ExpireTimer synthesizes a zero-score answer for the current question when
// the countdown reaches zero without a submission, then advances as usual.
func (e *Engine) ExpireTimer(ctx context.Context, id string) (*model.Candidate, error) {
	cand, err := e.store.Update(ctx, id, func(c *model.Candidate) error {
		if c.Status != model.StatusInProgress || c.CurrentQuestionIndex != len(c.InterviewAnswers) {
			return ErrInvalidTransition
		}
		q := c.CurrentQuestion()
		if q == nil {
			return ErrInvalidTransition
		}

		appendMessage(c, model.MessageSystem, "Time's up! Moving to the next question.")
		c.InterviewAnswers = append(c.InterviewAnswers, model.InterviewAnswer{
			QuestionID: q.ID,
			Question:   q.Question,
			Answer:     expiredAnswerText,
			TimeUsed:   q.TimeLimit,
			Score:      0,
			Feedback:   expiredFeedbackText,
			Timestamp:  time.Now(),
		})
		c.CurrentQuestionIndex++
		e.advance(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e.finalizeScore(ctx, cand)
}

// advance either loads the next question or completes the interview. The
// final report is not computed here; completion is committed first and the
// caller finalizes afterwards.
func (e *Engine) advance(c *model.Candidate) {
	c.UpdatedAt = time.Now()

	if c.CurrentQuestionIndex >= len(c.Questions) {
		now := time.Now()
		c.Status = model.StatusCompleted
		c.InterviewEndTime = &now
		c.TimeRemaining = nil
		appendBot(c, "Thank you for completing the interview! Your responses have been evaluated and recorded.")
		return
	}

	next := c.Questions[c.CurrentQuestionIndex]
	limit := next.TimeLimit
	c.TimeRemaining = &limit
	appendBot(c, fmt.Sprintf("Question %d of %d:\n\n%s",
		c.CurrentQuestionIndex+1, len(c.Questions), next.Question))
}

// finalizeScore computes the report for a freshly completed candidate and
// attaches it in a second, short update. The evaluator call runs without any
// store lock held so a slow report cannot stall other requests. Evaluator
// failures never block completion; the heuristic aggregate steps in.
func (e *Engine) finalizeScore(ctx context.Context, cand *model.Candidate) (*model.Candidate, error) {
	if cand.Status != model.StatusCompleted || cand.FinalScore != nil {
		return cand, nil
	}

	var details *model.ScoringDetails
	if e.useAI {
		report, err := e.evaluator.GenerateReport(ctx, cand.Name, cand.InterviewAnswers)
		if err != nil {
			e.logger.Sugar().Errorw("report generation failed, using heuristic fallback",
				"candidate_id", cand.ID, "err", err)
			details = scoring.FallbackReport(cand.InterviewAnswers, cand.Questions)
		} else {
			details = report
		}
	} else {
		details = scoring.Report(cand.InterviewAnswers, cand.Questions)
	}

	return e.store.Update(ctx, cand.ID, func(c *model.Candidate) error {
		if c.FinalScore != nil {
			return nil
		}
		c.ScoringDetails = details
		score := details.OverallScore
		c.FinalScore = &score
		c.UpdatedAt = time.Now()
		return nil
	})
}

func (e *Engine) scoreAnswer(ctx context.Context, q model.Question, answer string, timeUsed int) (int, string) {
	if !e.useAI {
		return scoring.ScoreAnswer(answer, q.ExpectedKeywords)
	}

	eval, err := e.evaluator.EvaluateAnswer(ctx, q, answer, timeUsed)
	if err != nil {
		e.logger.Sugar().Errorw("answer evaluation failed, recording fallback score",
			"question_id", q.ID, "err", err)
		return 50, "Answer received and recorded."
	}
	return eval.Score, eval.Feedback
}

// UpdateTimer persists the countdown value the UI reports while a question
// is active.
func (e *Engine) UpdateTimer(ctx context.Context, id string, remaining int) error {
	if remaining < 0 {
		remaining = 0
	}
	_, err := e.store.Update(ctx, id, func(c *model.Candidate) error {
		if c.Status != model.StatusInProgress {
			return ErrInvalidTransition
		}
		c.TimeRemaining = &remaining
		c.UpdatedAt = time.Now()
		return nil
	})
	return err
}

// Reset discards the candidate entirely, returning the flow to upload. Legal
// from any stage.
func (e *Engine) Reset(ctx context.Context, id string) error {
	if err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.logger.Sugar().Infow("candidate reset", "candidate_id", id)
	return nil
}

func appendMessage(c *model.Candidate, typ model.MessageType, content string) {
	c.ChatHistory = append(c.ChatHistory, model.ChatMessage{
		ID:        uuid.NewString(),
		Type:      typ,
		Content:   content,
		Timestamp: time.Now(),
	})
}

func appendBot(c *model.Candidate, content string) {
	appendMessage(c, model.MessageBot, content)
}
