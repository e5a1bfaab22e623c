package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/abhinav086/ai-interview/internal/interview"
	"github.com/abhinav086/ai-interview/internal/resume"
	"github.com/abhinav086/ai-interview/internal/store"
	"github.com/abhinav086/ai-interview/pkg/model"
	"github.com/abhinav086/ai-interview/pkg/response"
)

// UploadResume ingests a resume and creates the candidate. Bad uploads are
// rejected before any parsing; extraction failures create nothing.
func (h *Application) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		response.BadRequest(c, "resume file is required")
		return
	}

	if err := h.Parser.Validate(fileHeader.Filename, fileHeader.Size); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "could not read uploaded file")
		return
	}
	defer file.Close()

	parsed, err := h.Parser.Parse(fileHeader.Filename, file)
	if err != nil {
		h.Logger.Sugar().Errorw("resume parsing failed", "filename", fileHeader.Filename, "err", err)
		response.ValidationError(c, "error processing the file, please try again")
		return
	}

	cand, err := h.Engine.CreateCandidate(c.Request.Context(), parsed)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to create candidate", "err", err)
		response.InternalError(c, "failed to create candidate")
		return
	}

	response.Created(c, cand)
}

// GetCandidate returns the candidate the interviewee flow is working with.
func (h *Application) GetCandidate(c *gin.Context) {
	cand, err := h.Store.Get(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		response.NotFound(c, "candidate not found")
		return
	}
	if err != nil {
		response.InternalError(c, "")
		return
	}
	response.OK(c, cand)
}

// PostMessage handles one chat message during info collection.
func (h *Application) PostMessage(c *gin.Context) {
	var req model.ChatMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cand, err := h.Engine.HandleMessage(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	response.OK(c, cand)
}

// StartInterview generates or assigns the question set and begins question 1.
func (h *Application) StartInterview(c *gin.Context) {
	cand, err := h.Engine.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interview.ErrQuestionGeneration) {
			// Candidate stays ready; the UI surfaces this and lets the user retry.
			response.BadGateway(c, "failed to generate interview questions, please try again")
			return
		}
		h.respondEngineError(c, err)
		return
	}
	response.OK(c, cand)
}

// SubmitAnswer records and scores an answer to the current question.
func (h *Application) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cand, err := h.Engine.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Answer, *req.TimeRemaining)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	response.OK(c, cand)
}

// ExpireTimer is called when the countdown hits zero with no submission.
func (h *Application) ExpireTimer(c *gin.Context) {
	cand, err := h.Engine.ExpireTimer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	response.OK(c, cand)
}

// UpdateTimer persists the countdown value as the UI ticks.
func (h *Application) UpdateTimer(c *gin.Context) {
	var req model.UpdateTimerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.Engine.UpdateTimer(c.Request.Context(), c.Param("id"), *req.TimeRemaining); err != nil {
		h.respondEngineError(c, err)
		return
	}
	response.NoContent(c)
}

// ResetCandidate discards the candidate and returns the flow to upload.
func (h *Application) ResetCandidate(c *gin.Context) {
	if err := h.Engine.Reset(c.Request.Context(), c.Param("id")); err != nil {
		h.respondEngineError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Application) respondEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(c, "candidate not found")
	case errors.Is(err, interview.ErrInvalidTransition):
		response.Conflict(c, err.Error())
	case errors.Is(err, resume.ErrUnsupportedType) || errors.Is(err, resume.ErrFileTooLarge):
		response.BadRequest(c, err.Error())
	default:
		h.Logger.Sugar().Errorw("request failed", "path", c.Request.URL.Path, "err", err)
		response.InternalError(c, "")
	}
}
