package http

import (
	"net/http"

	"deutschprofi_backend/internal/http/handlers"
	"deutschprofi_backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes вешает все маршруты игрового API на роутер
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		sessions := api.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			// вход и ответы лимитируются: их шлют ученики со школьного Wi-Fi
			sessions.POST("/join", middleware.RateLimit(60), h.JoinSession)
			sessions.GET("/:sessionId", h.GetSession)
			sessions.POST("/:sessionId/start", h.StartSession)
			sessions.POST("/:sessionId/answer", middleware.RateLimit(240), h.SubmitAnswer)
			sessions.POST("/:sessionId/submit-grouping", middleware.RateLimit(240), h.SubmitGroupings)
			sessions.POST("/:sessionId/submit", h.MarkSubmitted)
			sessions.POST("/:sessionId/next-task", h.NextTask)
		}

		api.GET("/tasks/:gameMode", h.StoredTasks)
		api.GET("/leaderboard", h.Leaderboard)
	}

	r.GET("/ws", h.WS)
}
