package model

import (
	"time"
)

type CandidateStatus string

const (
	StatusPending    CandidateStatus = "pending"
	StatusInProgress CandidateStatus = "in-progress"
	StatusPaused     CandidateStatus = "paused"
	StatusCompleted  CandidateStatus = "completed"
)

// Contact fields are always collected in this order, whichever subset is missing.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

var ContactFieldOrder = []string{FieldName, FieldEmail, FieldPhone}

type Candidate struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	ResumeText   string          `json:"resume_text,omitempty"`
	Status       CandidateStatus `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	MissingFields    []string          `json:"missing_fields"`
	ChatHistory      []ChatMessage     `json:"chat_history"`
	Questions        []Question        `json:"questions,omitempty"`
	InterviewAnswers []InterviewAnswer `json:"interview_answers"`

	CurrentQuestionIndex int        `json:"current_question_index"`
	TimeRemaining        *int       `json:"time_remaining,omitempty"`
	InterviewStartTime   *time.Time `json:"interview_start_time,omitempty"`
	InterviewEndTime     *time.Time `json:"interview_end_time,omitempty"`

	FinalScore     *int            `json:"final_score,omitempty"`
	ScoringDetails *ScoringDetails `json:"scoring_details,omitempty"`
}

// CurrentQuestion returns the question the candidate is on, or nil once the
// index has run past the assigned set.
func (c *Candidate) CurrentQuestion() *Question {
	if c.CurrentQuestionIndex < 0 || c.CurrentQuestionIndex >= len(c.Questions) {
		return nil
	}
	return &c.Questions[c.CurrentQuestionIndex]
}

type MessageType string

const (
	MessageUser   MessageType = "user"
	MessageBot    MessageType = "bot"
	MessageSystem MessageType = "system"
)

// ChatMessage is append-only within a candidate's chat history.
type ChatMessage struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// InterviewAnswer is created once per question and never mutated afterwards.
type InterviewAnswer struct {
	QuestionID string    `json:"question_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	TimeUsed   int       `json:"time_used"`
	Score      int       `json:"score"`
	Feedback   string    `json:"feedback"`
	Timestamp  time.Time `json:"timestamp"`
}

type TabType string

const (
	TabInterviewee TabType = "interviewee"
	TabInterviewer TabType = "interviewer"
)

// AppState is the full persisted snapshot. It is written as a whole on every
// mutation and read back once at startup.
type AppState struct {
	CurrentTab         TabType     `json:"current_tab"`
	Candidates         []Candidate `json:"candidates"`
	CurrentCandidateID string      `json:"current_candidate_id,omitempty"`
}
