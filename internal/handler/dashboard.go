package handler

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhinav086/ai-interview/internal/scoring"
	"github.com/abhinav086/ai-interview/internal/store"
	"github.com/abhinav086/ai-interview/pkg/model"
	"github.com/abhinav086/ai-interview/pkg/response"
)

// ListCandidates serves the interviewer dashboard: search over name/email,
// status filter, and name/score/date ordering. Read-only over the store.
func (h *Application) ListCandidates(c *gin.Context) {
	var query model.ListCandidatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	switch query.Status {
	case "all",
		string(model.StatusPending),
		string(model.StatusInProgress),
		string(model.StatusPaused),
		string(model.StatusCompleted):
	default:
		response.BadRequest(c, "status must be one of: all, pending, in-progress, paused, completed")
		return
	}

	candidates := h.Store.List()
	search := strings.ToLower(strings.TrimSpace(query.Search))

	filtered := make([]model.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if search != "" &&
			!strings.Contains(strings.ToLower(cand.Name), search) &&
			!strings.Contains(strings.ToLower(cand.Email), search) {
			continue
		}
		if query.Status != "all" && string(cand.Status) != query.Status {
			continue
		}
		filtered = append(filtered, cand)
	}

	switch query.Sort {
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case "score":
		sort.SliceStable(filtered, func(i, j int) bool {
			return effectiveScore(&filtered[i]) > effectiveScore(&filtered[j])
		})
	case "date":
		// List already returns newest first.
	default:
		response.BadRequest(c, "sort must be one of: name, score, date")
		return
	}

	summaries := make([]model.CandidateSummary, len(filtered))
	for i := range filtered {
		summaries[i] = summarize(&filtered[i])
	}
	response.OK(c, summaries)
}

// GetCandidateDetail returns the full record: transcript, answers, scoring.
func (h *Application) GetCandidateDetail(c *gin.Context) {
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

// GetStats reports candidate counts by status.
func (h *Application) GetStats(c *gin.Context) {
	stats := model.DashboardStats{}
	for _, cand := range h.Store.List() {
		stats.Total++
		switch cand.Status {
		case model.StatusCompleted:
			stats.Completed++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusPending:
			stats.Pending++
		}
	}
	response.OK(c, stats)
}

// effectiveScore prefers the stored final score; a completed candidate that
// somehow lacks one is scored on the fly with the heuristic aggregate.
func effectiveScore(cand *model.Candidate) int {
	if cand.FinalScore != nil {
		return *cand.FinalScore
	}
	if cand.Status == model.StatusCompleted && len(cand.InterviewAnswers) > 0 {
		return scoring.Report(cand.InterviewAnswers, cand.Questions).OverallScore
	}
	return 0
}

func summarize(cand *model.Candidate) model.CandidateSummary {
	summary := model.CandidateSummary{
		ID:            cand.ID,
		Name:          cand.Name,
		Email:         cand.Email,
		Phone:         cand.Phone,
		Status:        cand.Status,
		FinalScore:    cand.FinalScore,
		QuestionCount: len(cand.Questions),
		AnswerCount:   len(cand.InterviewAnswers),
		CreatedAt:     cand.CreatedAt.Format(time.RFC3339),
	}
	if cand.ScoringDetails != nil {
		summary.Recommendation = cand.ScoringDetails.Recommendation
	}
	return summary
}
