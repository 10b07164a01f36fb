package repository

import (
	"context"

	"deutschprofi_backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository - архив итогов завершённых сессий. Сами сессии живут
// только в памяти, в базу уходят лишь финальные результаты для таблицы
// рекордов
type ResultRepository struct {
	db *pgxpool.Pool
}

func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{db: db}
}

// EnsureSchema создаёт таблицу результатов, если её ещё нет
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS game_results (
			id          BIGSERIAL PRIMARY KEY,
			session_id  TEXT NOT NULL,
			player_id   TEXT NOT NULL,
			player_name TEXT NOT NULL,
			score       INT NOT NULL,
			total_tasks INT NOT NULL,
			game_mode   TEXT NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL
		)`,
	)
	return err
}

// SaveAll записывает итоги всех игроков одной сессии
func (r *ResultRepository) SaveAll(ctx context.Context, results []domain.GameResult) error {
	for _, res := range results {
		_, err := r.db.Exec(ctx,
			`INSERT INTO game_results (session_id, player_id, player_name, score, total_tasks, game_mode, finished_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			res.SessionID, res.PlayerID, res.PlayerName, res.Score, res.TotalTasks, res.GameMode, res.FinishedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// TopResults возвращает лучшие результаты по убыванию очков
func (r *ResultRepository) TopResults(ctx context.Context, limit int) ([]domain.GameResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT session_id, player_id, player_name, score, total_tasks, game_mode, finished_at
		 FROM game_results
		 ORDER BY score DESC, finished_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.GameResult
	for rows.Next() {
		var res domain.GameResult
		if err := rows.Scan(&res.SessionID, &res.PlayerID, &res.PlayerName,
			&res.Score, &res.TotalTasks, &res.GameMode, &res.FinishedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
