package handlers

import (
	"errors"
	"net/http"

	"deutschprofi_backend/internal/domain"
	"deutschprofi_backend/internal/game"
	"deutschprofi_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Ответ на классификацию одного слова (режим wortarten)
func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req struct {
		PlayerID string `json:"playerId"`
		WordID   string `json:"wordId"`
		WordType string `json:"wordType"`
	}
	if err := c.BindJSON(&req); err != nil || req.PlayerID == "" || req.WordID == "" || req.WordType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	isCorrect, err := h.Service.SubmitAnswer(c.Param("sessionId"), req.PlayerID, req.WordID, req.WordType)
	if err != nil {
		writeGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"isCorrect": isCorrect})
}

// Отправка группировок целиком (режимы satzglieder/fall)
func (h *Handler) SubmitGroupings(c *gin.Context) {
	var req struct {
		PlayerID  string                     `json:"playerId"`
		Groupings map[string]domain.Grouping `json:"groupings"`
	}
	if err := c.BindJSON(&req); err != nil || req.PlayerID == "" || req.Groupings == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	result, err := h.Service.SubmitGroupings(c.Param("sessionId"), req.PlayerID, req.Groupings)
	if err != nil {
		writeGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Отметка "я сдал текущее задание". Повторные вызовы безвредны,
// флаг остаётся взведённым до продвижения задания
func (h *Handler) MarkSubmitted(c *gin.Context) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if err := c.BindJSON(&req); err != nil || req.PlayerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerId is required"})
		return
	}

	status, err := h.Service.MarkSubmitted(c.Param("sessionId"), req.PlayerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"allSubmitted":   status.AllSubmitted,
		"submittedCount": status.SubmittedCount,
		"totalPlayers":   status.TotalPlayers,
	})
}

func writeGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, game.ErrPlayerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
	case errors.Is(err, service.ErrWrongMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "operation does not match game mode"})
	default:
		// отказ состояния: не началась, завершена, нет задания
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session state"})
	}
}
