package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики игрового ядра, отдаются через /metrics
var (
	SessionsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_sessions_created_total",
		Help: "Количество созданных сессий по режимам игры",
	}, []string{"game_mode"})

	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_sessions_started_total",
		Help: "Количество запущенных сессий",
	})

	SessionsFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_sessions_finished_total",
		Help: "Количество завершённых сессий",
	})

	PlayersJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quiz_players_joined_total",
		Help: "Количество присоединившихся игроков",
	})

	AnswersScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_answers_scored_total",
		Help: "Количество оценённых ответов по результату",
	}, []string{"result"})

	GroupingsScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiz_groupings_scored_total",
		Help: "Количество оценённых группировок по результату",
	}, []string{"result"})

	WSClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quiz_ws_clients",
		Help: "Текущее число подключённых websocket клиентов",
	})
)
