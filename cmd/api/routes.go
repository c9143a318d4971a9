package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(app.requestLogger())
	r.Use(app.corsMiddleware())

	v1 := r.Group("/api/v1")
	{
		interviews := v1.Group("/interviews")
		interviews.POST("", app.Handler.StartInterview)
		interviews.POST("/answer", app.Handler.SubmitAnswer)
		interviews.POST("/skip", app.Handler.SkipQuestion)
		interviews.POST("/retry", app.Handler.RetryQuestion)
		interviews.GET("/current", app.Handler.CurrentSession)
		interviews.GET("/report", app.Handler.GetReport)
		interviews.POST("/save", app.Handler.SaveSession)

		v1.GET("/sessions", app.Handler.ListSessions)
		v1.GET("/sessions/archive", app.Handler.ArchivedSessions)
		v1.GET("/sessions/:name", app.Handler.GetSession)

		v1.POST("/chat", app.Handler.Chat)
		v1.POST("/chat/save", app.Handler.SaveChat)
	}

	return r
}
