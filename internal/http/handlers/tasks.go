package handlers

import (
	"net/http"
	"strconv"

	"deutschprofi_backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Список сохранённых заданий режима - инструмент учителя/оператора
func (h *Handler) StoredTasks(c *gin.Context) {
	mode := domain.GameMode(c.Param("gameMode"))
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game mode"})
		return
	}

	tasks, err := h.Service.StoredTasks(c.Request.Context(), mode)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "task store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"gameMode": mode,
		"count":    len(tasks),
		"tasks":    tasks,
	})
}

// Таблица рекордов из архива результатов
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	results, err := h.Service.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
