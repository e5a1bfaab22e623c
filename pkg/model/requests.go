package model

type LoginReq struct {
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token string `json:"token"`
}

type ChatMessageReq struct {
	Content string `json:"content" binding:"required"`
}

type SubmitAnswerReq struct {
	Answer string `json:"answer"`
	// TimeRemaining is the countdown value captured at submission. The UI owns
	// the countdown; the server derives time_used from it.
	TimeRemaining *int `json:"time_remaining" binding:"required"`
}

type UpdateTimerReq struct {
	TimeRemaining *int `json:"time_remaining" binding:"required"`
}

type SetTabReq struct {
	Tab TabType `json:"tab" binding:"required"`
}

type SetCurrentCandidateReq struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

type ListCandidatesQuery struct {
	Search string `form:"search"`
	Status string `form:"status,default=all"`
	Sort   string `form:"sort,default=date"`
}

type CandidateSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Status         CandidateStatus `json:"status"`
	FinalScore     *int            `json:"final_score,omitempty"`
	Recommendation Recommendation  `json:"recommendation,omitempty"`
	QuestionCount  int             `json:"question_count"`
	AnswerCount    int             `json:"answer_count"`
	CreatedAt      string          `json:"created_at"`
}

type DashboardStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// SessionRes tells a reconnecting UI whether to show the welcome-back prompt.
type SessionRes struct {
	CurrentTab         TabType    `json:"current_tab"`
	CurrentCandidateID string     `json:"current_candidate_id,omitempty"`
	Candidate          *Candidate `json:"candidate,omitempty"`
	HasUnfinished      bool       `json:"has_unfinished"`
}
