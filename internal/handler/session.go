package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/abhinav086/ai-interview/internal/auth"
	"github.com/abhinav086/ai-interview/pkg/model"
	"github.com/abhinav086/ai-interview/pkg/response"
)

// Login exchanges the configured interviewer password for a dashboard token.
func (h *Application) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.InterviewerPassword)) != 1 {
		response.Unauthorized(c, "invalid password")
		return
	}

	token, err := auth.GenerateToken(h.JwtSecret, h.JwtTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to generate token", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, model.LoginRes{Token: token})
}

// GetSession tells a reconnecting UI where it left off: selected tab, current
// candidate, and whether an unfinished interview should trigger the
// welcome-back prompt.
func (h *Application) GetSession(c *gin.Context) {
	res := model.SessionRes{
		CurrentTab:         h.Store.CurrentTab(),
		CurrentCandidateID: h.Store.CurrentCandidateID(),
	}

	if res.CurrentCandidateID != "" {
		if cand, err := h.Store.Get(res.CurrentCandidateID); err == nil {
			res.Candidate = cand
		}
	}
	for _, cand := range h.Store.List() {
		if cand.Status == model.StatusInProgress || cand.Status == model.StatusPaused {
			res.HasUnfinished = true
			break
		}
	}

	response.OK(c, res)
}

// SetTab persists the tab selection so it survives a reload.
func (h *Application) SetTab(c *gin.Context) {
	var req model.SetTabReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	switch req.Tab {
	case model.TabInterviewee, model.TabInterviewer:
	default:
		response.BadRequest(c, "tab must be interviewee or interviewer")
		return
	}

	h.Store.SetCurrentTab(c.Request.Context(), req.Tab)
	response.NoContent(c)
}

// SetCurrentCandidate selects the candidate the interviewee flow resumes
// with, typically after the welcome-back prompt.
func (h *Application) SetCurrentCandidate(c *gin.Context) {
	var req model.SetCurrentCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.Store.Get(req.CandidateID); err != nil {
		response.NotFound(c, "candidate not found")
		return
	}

	h.Store.SetCurrentCandidateID(c.Request.Context(), req.CandidateID)
	response.NoContent(c)
}
