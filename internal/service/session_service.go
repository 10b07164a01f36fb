package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"deutschprofi_backend/internal/domain"
	"deutschprofi_backend/internal/game"
	"deutschprofi_backend/internal/logger"
	"deutschprofi_backend/internal/metrics"
	"deutschprofi_backend/internal/repository"
	"deutschprofi_backend/internal/taskgen"
	"deutschprofi_backend/internal/taskstore"
)

var (
	ErrInvalidConfig = errors.New("некорректная конфигурация сессии")
	ErrWrongMode     = errors.New("операция не соответствует режиму игры")
	ErrNoTaskStore   = errors.New("хранилище заданий не настроено")
)

// Notifier пушит снимки сессий подписчикам (websocket hub)
type Notifier interface {
	PublishSession(snapshot domain.Session)
}

// SessionService - фасад игрового ядра: единственная точка входа
// HTTP-слоя. Композиция хранилища сессий, источников заданий,
// пуш-уведомлений и архива результатов
type SessionService struct {
	store   *game.Store
	gen     *taskgen.Generator
	tasks   *taskstore.Client            // nil = внешнее хранилище не настроено
	notify  Notifier                     // nil = без пуша
	results *repository.ResultRepository // nil = без архива
	log     *slog.Logger
}

func NewSessionService(store *game.Store) *SessionService {
	return &SessionService{
		store: store,
		gen:   taskgen.New(),
		log:   logger.With("component", "session_service"),
	}
}

// SetTaskStore подключает внешнее хранилище заданий
func (s *SessionService) SetTaskStore(client *taskstore.Client) {
	s.tasks = client
}

// SetNotifier подключает пуш-уведомления
func (s *SessionService) SetNotifier(n Notifier) {
	s.notify = n
}

// SetResultRepository подключает архив результатов
func (s *SessionService) SetResultRepository(repo *repository.ResultRepository) {
	s.results = repo
}

// CreateSession создаёт сессию, дождавшись получения заданий.
// Получение контента - единственный медленный шаг рядом с ядром,
// сессия становится видимой только после его завершения
func (s *SessionService) CreateSession(ctx context.Context, cfg domain.GameConfig, useStoredTasks bool) (domain.Session, error) {
	if len(cfg.WordTypes) == 0 {
		return domain.Session{}, ErrInvalidConfig
	}
	if cfg.TaskCount <= 0 {
		return domain.Session{}, ErrInvalidConfig
	}
	if cfg.GameMode == "" {
		cfg.GameMode = domain.ModeWortarten
	}
	if !cfg.GameMode.Valid() {
		return domain.Session{}, ErrInvalidConfig
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = domain.DifficultyEasy
	}
	if !cfg.Difficulty.Valid() {
		return domain.Session{}, ErrInvalidConfig
	}

	var tasks []domain.GameTask
	var err error
	if useStoredTasks {
		if s.tasks == nil {
			return domain.Session{}, ErrNoTaskStore
		}
		tasks, err = s.tasks.PickRandom(ctx, cfg.GameMode, cfg.TaskCount)
	} else {
		tasks, err = s.gen.Generate(cfg)
	}
	if err != nil {
		return domain.Session{}, err
	}

	session, err := game.NewSession(cfg, tasks)
	if err != nil {
		// сессия с испорченным контентом не регистрируется вовсе
		return domain.Session{}, err
	}

	s.store.Add(session)
	metrics.SessionsCreated.WithLabelValues(string(cfg.GameMode)).Inc()
	s.log.Info("session created",
		"session_id", session.ID(),
		"code", session.Code(),
		"game_mode", cfg.GameMode,
		"tasks", len(tasks),
		"stored", useStoredTasks,
	)
	return session.Snapshot(), nil
}

// JoinSession добавляет игрока по коду входа. "Не найдена" покрывает
// и несуществующий код, и уже начавшуюся сессию
func (s *SessionService) JoinSession(code, playerName string) (domain.Player, domain.Session, error) {
	session, ok := s.store.FindJoinableByCode(code)
	if !ok {
		return domain.Player{}, domain.Session{}, game.ErrSessionNotFound
	}

	player, err := session.Join(playerName)
	if err != nil {
		// сессия стартовала между поиском и входом - для клиента
		// это та же "не найдена"
		return domain.Player{}, domain.Session{}, game.ErrSessionNotFound
	}

	metrics.PlayersJoined.Inc()
	s.log.Info("player joined", "session_id", session.ID(), "player_id", player.ID, "name", player.Name)

	snapshot := session.Snapshot()
	s.publish(snapshot)
	return player, snapshot, nil
}

func (s *SessionService) GetSession(sessionID string) (domain.Session, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return domain.Session{}, game.ErrSessionNotFound
	}
	return session.Snapshot(), nil
}

func (s *SessionService) StartSession(sessionID string) (domain.Session, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return domain.Session{}, game.ErrSessionNotFound
	}

	if err := session.Start(); err != nil {
		return domain.Session{}, err
	}

	metrics.SessionsStarted.Inc()
	s.log.Info("session started", "session_id", sessionID)

	snapshot := session.Snapshot()
	s.publish(snapshot)
	return snapshot, nil
}

// SubmitAnswer оценивает классификацию одного слова (режим wortarten)
func (s *SessionService) SubmitAnswer(sessionID, playerID, wordID, wordType string) (bool, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return false, game.ErrSessionNotFound
	}
	if session.Mode().UsesGroupings() {
		return false, ErrWrongMode
	}

	correct, err := session.SubmitAnswer(playerID, wordID, wordType)
	if err != nil {
		return false, err
	}

	if correct {
		metrics.AnswersScored.WithLabelValues("correct").Inc()
	} else {
		metrics.AnswersScored.WithLabelValues("incorrect").Inc()
	}

	s.publish(session.Snapshot())
	return correct, nil
}

// SubmitGroupings оценивает группировки (режимы satzglieder/fall)
func (s *SessionService) SubmitGroupings(sessionID, playerID string, groupings map[string]domain.Grouping) (game.GroupingResult, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return game.GroupingResult{}, game.ErrSessionNotFound
	}
	if !session.Mode().UsesGroupings() {
		return game.GroupingResult{}, ErrWrongMode
	}

	result, err := session.SubmitGroupings(playerID, groupings)
	if err != nil {
		return game.GroupingResult{}, err
	}

	metrics.GroupingsScored.WithLabelValues("correct").Add(float64(result.CorrectCount))
	metrics.GroupingsScored.WithLabelValues("incorrect").Add(float64(result.TotalCount - result.CorrectCount))

	s.publish(session.Snapshot())
	return result, nil
}

// SubmitStatus - состояние сдачи текущего задания после отметки игрока
type SubmitStatus struct {
	PlayerFound    bool
	AllSubmitted   bool
	SubmittedCount int
	TotalPlayers   int
}

// MarkSubmitted отмечает игрока сдавшим текущее задание. Отсутствующий
// игрок не считается ошибкой: клиент мог отстать от продвижения задания
func (s *SessionService) MarkSubmitted(sessionID, playerID string) (SubmitStatus, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return SubmitStatus{}, game.ErrSessionNotFound
	}

	found := session.MarkSubmitted(playerID)
	if !found {
		s.log.Warn("mark submitted: player not in roster", "session_id", sessionID, "player_id", playerID)
	}
	all, submitted, total := session.SubmissionStatus()

	s.publish(session.Snapshot())
	return SubmitStatus{
		PlayerFound:    found,
		AllSubmitted:   all,
		SubmittedCount: submitted,
		TotalPlayers:   total,
	}, nil
}

// NextTask продвигает сессию к следующему заданию. Завершающее
// продвижение дополнительно отправляет итоги в архив
func (s *SessionService) NextTask(sessionID string) (domain.Session, error) {
	session, ok := s.store.GetByID(sessionID)
	if !ok {
		return domain.Session{}, game.ErrSessionNotFound
	}

	if err := session.Advance(); err != nil {
		return domain.Session{}, err
	}

	snapshot := session.Snapshot()
	if snapshot.IsFinished {
		metrics.SessionsFinished.Inc()
		s.log.Info("session finished", "session_id", sessionID)
		s.archiveResults(session)
	}

	s.publish(snapshot)
	return snapshot, nil
}

// StoredTasks отдаёт сохранённые задания режима (операторский путь)
func (s *SessionService) StoredTasks(ctx context.Context, mode domain.GameMode) ([]domain.GameTask, error) {
	if s.tasks == nil {
		return nil, ErrNoTaskStore
	}
	return s.tasks.TasksForMode(ctx, mode)
}

// Leaderboard возвращает лучшие архивные результаты. Без настроенного
// архива список пуст
func (s *SessionService) Leaderboard(ctx context.Context, limit int) ([]domain.GameResult, error) {
	if s.results == nil {
		return []domain.GameResult{}, nil
	}
	return s.results.TopResults(ctx, limit)
}

func (s *SessionService) publish(snapshot domain.Session) {
	if s.notify != nil {
		s.notify.PublishSession(snapshot)
	}
}

func (s *SessionService) archiveResults(session *game.Session) {
	if s.results == nil {
		return
	}

	results := session.Results()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.results.SaveAll(ctx, results); err != nil {
			s.log.Error("archive results", "session_id", session.ID(), "error", err)
		}
	}()
}
