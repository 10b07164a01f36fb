package handlers

import (
	"net/http"

	"deutschprofi_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// фронт и бэк живут на разных доменах, origin проверяет CORS-слой
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Подписка на пуш снимков сессии. Клиент ничего не шлёт, только слушает:
// альтернатива polling'у GET /api/sessions/:id
func (h *Handler) WS(c *gin.Context) {
	sessionID := c.Query("session")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session is required"})
		return
	}

	snapshot, err := h.Service.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("ws upgrade", "session_id", sessionID, "error", err)
		return
	}

	client := h.Hub.Subscribe(sessionID, conn)

	// сразу пушим текущее состояние, чтобы клиент не ждал первого события
	h.Hub.PublishSession(snapshot)

	client.Run()
}
