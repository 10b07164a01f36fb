package domain

import "time"

// GameResult - итог игрока по завершённой сессии, уходит в архив результатов
type GameResult struct {
	SessionID  string    `json:"sessionId"`
	PlayerID   string    `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	TotalTasks int       `json:"totalTasks"`
	GameMode   GameMode  `json:"gameMode"`
	FinishedAt time.Time `json:"finishedAt"`
}
