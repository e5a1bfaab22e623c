package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/abhinav086/ai-interview/internal/config"
	"github.com/abhinav086/ai-interview/internal/genai"
	"github.com/abhinav086/ai-interview/internal/handler"
	"github.com/abhinav086/ai-interview/internal/interview"
	"github.com/abhinav086/ai-interview/internal/logger"
	"github.com/abhinav086/ai-interview/internal/resume"
	"github.com/abhinav086/ai-interview/internal/store"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Store   *store.Store
	Handler *handler.Application
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s storage=%s", cfg.Env, cfg.Storage.Backend)

	backend, err := newBackend(ctx, cfg)
	if err != nil {
		sugar.Fatal(err)
	}

	st, err := store.New(ctx, backend, log)
	if err != nil {
		sugar.Fatal(err)
	}
	defer st.Close()

	var evaluator interview.Evaluator
	if cfg.Gemini.APIKey != "" {
		client := genai.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		evaluator = genai.NewEvaluator(client)
	}
	useAI := cfg.UseAIQuestions()
	if useAI && evaluator == nil {
		sugar.Fatal("QUESTION_SOURCE=ai requires GEMINI_API_KEY")
	}
	sugar.Infof("interview mode: ai=%t model=%s", useAI, cfg.Gemini.Model)

	engine := interview.NewEngine(st, evaluator, useAI, cfg.Interview.QuestionCount, log)
	parser := resume.NewParser(cfg.Upload.Dir, cfg.Upload.MaxSizeMB)

	app := &application{
		Logger: log,
		Config: cfg,
		Store:  st,
		Handler: &handler.Application{
			Logger:              log,
			Store:               st,
			Engine:              engine,
			Parser:              parser,
			JwtSecret:           cfg.JWT.Secret,
			JwtTTL:              cfg.JWT.TokenTTL,
			InterviewerPassword: cfg.JWT.InterviewerPassword,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

func newBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Backend {
	case "file":
		return store.NewFileBackend(cfg.Storage.FilePath)
	case "redis":
		return store.NewRedisBackend(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisPass, cfg.Storage.RedisDB)
	case "postgres":
		return store.NewPostgresBackend(ctx, cfg.Storage.PostgresDSN)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
