package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhinav086/ai-interview/pkg/model"
)

func newFileStore(t *testing.T, path string) *Store {
	t.Helper()
	backend, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	s, err := New(context.Background(), backend, zap.NewNop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func sampleCandidate(t *testing.T) *model.Candidate {
	t.Helper()
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	started := now.Add(5 * time.Minute)
	remaining := 45
	score := 72
	return &model.Candidate{
		ID:        "cand-1",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "(555) 123-4567",
		Status:    model.StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
		ChatHistory: []model.ChatMessage{
			{ID: "m1", Type: model.MessageBot, Content: "Please provide your email.", Timestamp: now},
			{ID: "m2", Type: model.MessageUser, Content: "jane@example.com", Timestamp: now.Add(time.Minute)},
		},
		Questions: []model.Question{
			{ID: "q1", Question: "What is a closure?", Difficulty: model.DifficultyEasy, TimeLimit: 20, Category: "JavaScript Advanced", ExpectedKeywords: []string{"scope"}},
		},
		InterviewAnswers: []model.InterviewAnswer{
			{QuestionID: "q1", Question: "What is a closure?", Answer: "A function with its lexical scope.", TimeUsed: 12, Score: 70, Feedback: "ok", Timestamp: now.Add(2 * time.Minute)},
		},
		CurrentQuestionIndex: 1,
		TimeRemaining:        &remaining,
		InterviewStartTime:   &started,
		FinalScore:           &score,
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	s1 := newFileStore(t, path)
	cand := sampleCandidate(t)
	if err := s1.Create(ctx, cand); err != nil {
		t.Fatalf("create: %v", err)
	}
	s1.SetCurrentTab(ctx, model.TabInterviewer)

	// A second store reading the same backend must see identical data.
	s2 := newFileStore(t, path)

	got, err := s2.Get("cand-1")
	if err != nil {
		t.Fatalf("get after reload: %v", err)
	}
	if got.Name != cand.Name || got.Email != cand.Email || got.Phone != cand.Phone {
		t.Fatalf("contact fields diverged after round trip: %+v", got)
	}
	if got.Status != cand.Status || got.CurrentQuestionIndex != cand.CurrentQuestionIndex {
		t.Fatalf("progression fields diverged after round trip: %+v", got)
	}
	if len(got.ChatHistory) != 2 || got.ChatHistory[1].Content != "jane@example.com" {
		t.Fatalf("chat history diverged: %+v", got.ChatHistory)
	}
	if len(got.InterviewAnswers) != 1 || got.InterviewAnswers[0].Score != 70 {
		t.Fatalf("answers diverged: %+v", got.InterviewAnswers)
	}
	if got.FinalScore == nil || *got.FinalScore != 72 {
		t.Fatalf("final score diverged: %v", got.FinalScore)
	}

	// Times must compare equal by instant.
	if !got.CreatedAt.Equal(cand.CreatedAt) {
		t.Fatalf("created_at instant diverged: %v vs %v", got.CreatedAt, cand.CreatedAt)
	}
	if got.InterviewStartTime == nil || !got.InterviewStartTime.Equal(*cand.InterviewStartTime) {
		t.Fatalf("interview_start_time instant diverged")
	}
	if !got.InterviewAnswers[0].Timestamp.Equal(cand.InterviewAnswers[0].Timestamp) {
		t.Fatalf("answer timestamp instant diverged")
	}

	if s2.CurrentTab() != model.TabInterviewer {
		t.Fatalf("current tab not restored, got %s", s2.CurrentTab())
	}
	if s2.CurrentCandidateID() != "cand-1" {
		t.Fatalf("current candidate not restored, got %q", s2.CurrentCandidateID())
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "state.json"))
	if err := s.Create(context.Background(), sampleCandidate(t)); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, _ := s.Get("cand-1")
	first.Name = "Mallory"
	first.ChatHistory[0].Content = "tampered"

	second, _ := s.Get("cand-1")
	if second.Name != "Jane Doe" {
		t.Fatalf("mutation through a Get copy leaked into the store")
	}
	if second.ChatHistory[0].Content != "Please provide your email." {
		t.Fatalf("slice mutation through a Get copy leaked into the store")
	}
}

func TestUpdateRejectedOnError(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()
	if err := s.Create(ctx, sampleCandidate(t)); err != nil {
		t.Fatalf("create: %v", err)
	}

	wantErr := context.Canceled
	_, err := s.Update(ctx, "cand-1", func(c *model.Candidate) error {
		c.Name = "should not stick"
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("expected the mutator error back, got %v", err)
	}

	got, _ := s.Get("cand-1")
	if got.Name != "Jane Doe" {
		t.Fatalf("rejected update leaked: %q", got.Name)
	}
}

func TestDeleteClearsCurrentCandidate(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()
	if err := s.Create(ctx, sampleCandidate(t)); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(ctx, "cand-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get("cand-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.CurrentCandidateID() != "" {
		t.Fatalf("current candidate id should be cleared on delete")
	}
}

func TestFileBackendNoSnapshot(t *testing.T) {
	backend, err := NewFileBackend(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("new file backend: %v", err)
	}
	if _, err := backend.Load(context.Background()); err != ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	older := sampleCandidate(t)
	newer := sampleCandidate(t)
	newer.ID = "cand-2"
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)

	if err := s.Create(ctx, older); err != nil {
		t.Fatalf("create older: %v", err)
	}
	if err := s.Create(ctx, newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(list))
	}
	if list[0].ID != "cand-2" {
		t.Fatalf("expected newest first, got %s", list[0].ID)
	}
}
