package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	if app.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", app.Handler.Login)
		v1.GET("/session", app.Handler.GetSession)
		v1.PUT("/session/tab", app.Handler.SetTab)
		v1.PUT("/session/candidate", app.Handler.SetCurrentCandidate)

		// interviewee flow
		v1.POST("/candidates", app.Handler.UploadResume)
		v1.GET("/candidates/:id", app.Handler.GetCandidate)
		v1.POST("/candidates/:id/messages", app.Handler.PostMessage)
		v1.POST("/candidates/:id/start", app.Handler.StartInterview)
		v1.POST("/candidates/:id/answers", app.Handler.SubmitAnswer)
		v1.POST("/candidates/:id/expire", app.Handler.ExpireTimer)
		v1.PUT("/candidates/:id/timer", app.Handler.UpdateTimer)
		v1.DELETE("/candidates/:id", app.Handler.ResetCandidate)
	}

	// interviewer dashboard
	dashboard := v1.Group("/dashboard")
	dashboard.Use(app.AuthMiddleware())
	{
		dashboard.GET("/candidates", app.Handler.ListCandidates)
		dashboard.GET("/candidates/:id", app.Handler.GetCandidateDetail)
		dashboard.GET("/stats", app.Handler.GetStats)
	}

	return r
}
