package handlers

import (
	"errors"
	"net/http"

	"deutschprofi_backend/internal/domain"
	"deutschprofi_backend/internal/game"
	"deutschprofi_backend/internal/service"
	"deutschprofi_backend/internal/taskstore"

	"github.com/gin-gonic/gin"
)

// Создание сессии. Ошибка конфигурации или пустое хранилище заданий -
// сессия не регистрируется вовсе
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		Config         domain.GameConfig `json:"config"`
		UseStoredTasks bool              `json:"useStoredTasks"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	session, err := h.Service.CreateSession(c.Request.Context(), req.Config, req.UseStoredTasks)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidConfig):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration"})
		case errors.Is(err, taskstore.ErrNoStoredTasks), errors.Is(err, service.ErrNoTaskStore):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no stored tasks available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":   session.ID,
		"sessionCode": session.Code,
		"session":     session,
	})
}

// Вход игрока по коду. "Не найдена" покрывает и несуществующий код,
// и уже начавшуюся сессию
func (h *Handler) JoinSession(c *gin.Context) {
	var req struct {
		Code       string `json:"code"`
		PlayerName string `json:"playerName"`
	}
	if err := c.BindJSON(&req); err != nil || req.Code == "" || req.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and player name are required"})
		return
	}

	player, session, err := h.Service.JoinSession(req.Code, req.PlayerName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found or already started"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"playerId": player.ID,
		"session":  session,
	})
}

func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "session not found or no players"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// Продвижение к следующему заданию (темп задаёт учитель)
func (h *Handler) NextTask(c *gin.Context) {
	session, err := h.Service.NextTask(c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session state"})
		return
	}
	c.JSON(http.StatusOK, session)
}
