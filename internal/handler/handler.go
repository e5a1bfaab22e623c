package handler

import (
	"time"

	"go.uber.org/zap"

	"github.com/abhinav086/ai-interview/internal/interview"
	"github.com/abhinav086/ai-interview/internal/resume"
	"github.com/abhinav086/ai-interview/internal/store"
)

// Application carries the dependencies gin handlers need.
type Application struct {
	Logger              *zap.Logger
	Store               *store.Store
	Engine              *interview.Engine
	Parser              *resume.Parser
	JwtSecret           string
	JwtTTL              time.Duration
	InterviewerPassword string
}
