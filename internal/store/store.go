package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/abhinav086/ai-interview/pkg/model"
)

var ErrNotFound = errors.New("candidate not found")

// Store exclusively owns every candidate record. All mutation funnels through
// it, and each mutation mirrors the full application state to the backend.
// Persistence failures are logged and swallowed: the in-memory state stays
// usable, degraded to non-durable.
type Store struct {
	mu         sync.RWMutex
	candidates map[string]*model.Candidate
	currentTab model.TabType
	currentID  string

	backend Backend
	logger  *zap.Logger
}

func New(ctx context.Context, backend Backend, logger *zap.Logger) (*Store, error) {
	s := &Store{
		candidates: make(map[string]*model.Candidate),
		currentTab: model.TabInterviewee,
		backend:    backend,
		logger:     logger,
	}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		logger.Sugar().Infow("no saved state, starting fresh", "key", SnapshotKey)
	case err != nil:
		// A broken snapshot is treated the same as an absent one.
		logger.Sugar().Errorw("failed to load saved state", "err", err)
	default:
		var state model.AppState
		if err := json.Unmarshal(data, &state); err != nil {
			logger.Sugar().Errorw("failed to decode saved state", "err", err)
			break
		}
		for i := range state.Candidates {
			cand := state.Candidates[i]
			s.candidates[cand.ID] = &cand
		}
		if state.CurrentTab != "" {
			s.currentTab = state.CurrentTab
		}
		s.currentID = state.CurrentCandidateID
		logger.Sugar().Infow("loaded saved state", "candidates", len(s.candidates))
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Create registers a new candidate and makes it current.
func (s *Store) Create(ctx context.Context, cand *model.Candidate) error {
	if cand.ID == "" {
		return fmt.Errorf("candidate id must not be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[cand.ID]; ok {
		return fmt.Errorf("candidate %s already exists", cand.ID)
	}
	s.candidates[cand.ID] = cloneCandidate(cand)
	s.currentID = cand.ID
	s.persistLocked(ctx)
	return nil
}

// Get returns a copy of the candidate so callers can never diverge shared state.
func (s *Store) Get(id string) (*model.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cand, ok := s.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneCandidate(cand), nil
}

// Update applies fn to the candidate under the store lock and persists the
// result. fn receives a private copy; returning an error discards the change.
func (s *Store) Update(ctx context.Context, id string, fn func(*model.Candidate) error) (*model.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cand, ok := s.candidates[id]
	if !ok {
		return nil, ErrNotFound
	}
	next := cloneCandidate(cand)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.candidates[id] = next
	s.persistLocked(ctx)
	return cloneCandidate(next), nil
}

// Delete discards the candidate entirely (the explicit reset action).
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[id]; !ok {
		return ErrNotFound
	}
	delete(s.candidates, id)
	if s.currentID == id {
		s.currentID = ""
	}
	s.persistLocked(ctx)
	return nil
}

// List returns copies of all candidates, newest first.
func (s *Store) List() []model.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Candidate, 0, len(s.candidates))
	for _, cand := range s.candidates {
		out = append(out, *cloneCandidate(cand))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) CurrentCandidateID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

func (s *Store) SetCurrentCandidateID(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
	s.persistLocked(ctx)
}

func (s *Store) CurrentTab() model.TabType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentTab
}

func (s *Store) SetCurrentTab(ctx context.Context, tab model.TabType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTab = tab
	s.persistLocked(ctx)
}

// Snapshot serializes the full application state.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() ([]byte, error) {
	state := model.AppState{
		CurrentTab:         s.currentTab,
		CurrentCandidateID: s.currentID,
		Candidates:         make([]model.Candidate, 0, len(s.candidates)),
	}
	for _, cand := range s.candidates {
		state.Candidates = append(state.Candidates, *cand)
	}
	sort.Slice(state.Candidates, func(i, j int) bool {
		if state.Candidates[i].CreatedAt.Equal(state.Candidates[j].CreatedAt) {
			return state.Candidates[i].ID < state.Candidates[j].ID
		}
		return state.Candidates[i].CreatedAt.Before(state.Candidates[j].CreatedAt)
	})
	return json.Marshal(state)
}

func (s *Store) persistLocked(ctx context.Context) {
	data, err := s.snapshotLocked()
	if err != nil {
		s.logger.Sugar().Errorw("failed to serialize state", "err", err)
		return
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Sugar().Errorw("failed to persist state", "err", err)
	}
}

func cloneCandidate(c *model.Candidate) *model.Candidate {
	out := *c
	out.MissingFields = append([]string(nil), c.MissingFields...)
	out.ChatHistory = append([]model.ChatMessage(nil), c.ChatHistory...)
	out.Questions = cloneQuestions(c.Questions)
	out.InterviewAnswers = append([]model.InterviewAnswer(nil), c.InterviewAnswers...)
	if c.TimeRemaining != nil {
		v := *c.TimeRemaining
		out.TimeRemaining = &v
	}
	if c.InterviewStartTime != nil {
		v := *c.InterviewStartTime
		out.InterviewStartTime = &v
	}
	if c.InterviewEndTime != nil {
		v := *c.InterviewEndTime
		out.InterviewEndTime = &v
	}
	if c.FinalScore != nil {
		v := *c.FinalScore
		out.FinalScore = &v
	}
	if c.ScoringDetails != nil {
		v := *c.ScoringDetails
		v.Strengths = append([]string(nil), c.ScoringDetails.Strengths...)
		v.Improvements = append([]string(nil), c.ScoringDetails.Improvements...)
		out.ScoringDetails = &v
	}
	return &out
}

func cloneQuestions(qs []model.Question) []model.Question {
	if qs == nil {
		return nil
	}
	out := make([]model.Question, len(qs))
	for i, q := range qs {
		out[i] = q
		out[i].ExpectedKeywords = append([]string(nil), q.ExpectedKeywords...)
		out[i].ExpectedPoints = append([]string(nil), q.ExpectedPoints...)
	}
	return out
}
