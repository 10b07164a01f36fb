package game

import (
	"fmt"
	"sync"
	"time"

	"deutschprofi_backend/internal/domain"

	"github.com/google/uuid"
)

// Session оборачивает состояние одной игровой сессии мьютексом.
// Все мутации проходят через короткие критические секции на этом мьютексе,
// между сессиями блокировок нет
type Session struct {
	mu   sync.Mutex
	data domain.Session
}

// NewSession создаёт сессию с пустым ростером и проверяет задания на входе.
// Некорректное задание - единственная жёсткая ошибка ядра: принять его
// значит испортить каждую последующую оценку
func NewSession(cfg domain.GameConfig, tasks []domain.GameTask) (*Session, error) {
	if err := validateTasks(cfg, tasks); err != nil {
		return nil, err
	}

	return &Session{
		data: domain.Session{
			ID:          uuid.NewString(),
			Code:        NewSessionCode(),
			Config:      cfg.Clone(),
			Players:     []domain.Player{},
			CurrentTask: 0,
			IsActive:    true,
			IsStarted:   false,
			IsFinished:  false,
			Tasks:       tasks,
			CreatedAt:   time.Now(),
		},
	}, nil
}

func validateTasks(cfg domain.GameConfig, tasks []domain.GameTask) error {
	for i, task := range tasks {
		if task.ID == "" || task.Sentence == "" {
			return fmt.Errorf("%w: задание %d без id или предложения", ErrInvalidTask, i)
		}
		if len(task.Words) == 0 {
			return fmt.Errorf("%w: задание %d без слов", ErrInvalidTask, i)
		}
		if task.CorrectAnswers == nil {
			return fmt.Errorf("%w: задание %d без карты ответов", ErrInvalidTask, i)
		}

		wordIDs := make(map[string]bool, len(task.Words))
		for _, w := range task.Words {
			if w.ID == "" {
				return fmt.Errorf("%w: задание %d содержит слово без id", ErrInvalidTask, i)
			}
			if wordIDs[w.ID] {
				return fmt.Errorf("%w: задание %d содержит дубликат слова %s", ErrInvalidTask, i, w.ID)
			}
			wordIDs[w.ID] = true
		}

		for wid := range task.CorrectAnswers {
			if !wordIDs[wid] {
				return fmt.Errorf("%w: задание %d ссылается на неизвестное слово %s", ErrInvalidTask, i, wid)
			}
		}

		if cfg.GameMode.UsesGroupings() {
			if len(task.SentenceParts) == 0 {
				return fmt.Errorf("%w: задание %d без эталонных групп для режима %s", ErrInvalidTask, i, cfg.GameMode)
			}
			for _, part := range task.SentenceParts {
				for _, wid := range part.WordIDs {
					if !wordIDs[wid] {
						return fmt.Errorf("%w: группа %q задания %d ссылается на неизвестное слово %s",
							ErrInvalidTask, part.CorrectType, i, wid)
					}
				}
			}
		}
	}
	return nil
}

func (s *Session) ID() string {
	return s.data.ID
}

func (s *Session) Code() string {
	return s.data.Code
}

// Mode возвращает режим игры. Конфиг после создания неизменяем,
// блокировка не нужна
func (s *Session) Mode() domain.GameMode {
	return s.data.Config.GameMode
}

// Joinable сообщает, принимает ли сессия новых игроков
func (s *Session) Joinable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.IsActive && !s.data.IsStarted
}

// Join добавляет игрока в ростер. Порядок вставки сохраняется,
// на игровую логику он не влияет
func (s *Session) Join(name string) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.IsActive || s.data.IsStarted {
		return domain.Player{}, ErrNotJoinable
	}

	player := domain.Player{
		ID:    uuid.NewString(),
		Name:  name,
		Score: 0,
	}
	s.data.Players = append(s.data.Players, player)
	return player, nil
}

// MarkSubmitted выставляет игроку флаг сдачи текущего задания.
// Отсутствующий игрок - восстановимая гонка клиента, не ошибка
func (s *Session) MarkSubmitted(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Players {
		if s.data.Players[i].ID == playerID {
			s.data.Players[i].HasSubmittedCurrentTask = true
			return true
		}
	}
	return false
}

// SubmissionStatus возвращает счётчики сдачи текущего задания.
// Пустой ростер считается НЕ сдавшим: учитель не должен открыть
// решения раньше, чем кто-то вообще присоединился
func (s *Session) SubmissionStatus() (allSubmitted bool, submitted, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total = len(s.data.Players)
	for _, p := range s.data.Players {
		if p.HasSubmittedCurrentTask {
			submitted++
		}
	}
	return total > 0 && submitted == total, submitted, total
}

// Start переводит сессию в запущенное состояние. Повторный вызов -
// безвредный no-op, отказ только при пустом ростере
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.data.Players) == 0 {
		return ErrNoPlayers
	}
	s.data.IsStarted = true
	return nil
}

// Advance продвигает указатель текущего задания. Индекс не подрезается:
// дойдя до len(tasks), сессия помечается завершённой, и дальнейшие
// вызовы отклоняются. Флаги сдачи сбрасываются на каждом продвижении,
// включая финальное
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.IsStarted {
		return ErrNotStarted
	}
	if s.data.IsFinished {
		return ErrSessionFinished
	}

	s.data.CurrentTask++
	if s.data.CurrentTask >= len(s.data.Tasks) {
		s.data.IsFinished = true
	}

	for i := range s.data.Players {
		s.data.Players[i].HasSubmittedCurrentTask = false
	}
	return nil
}

// Snapshot возвращает копию состояния для сериализации и пуша.
// Задания после создания неизменяемы, их можно отдавать без копии
func (s *Session) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.data
	out.Config = s.data.Config.Clone()
	out.Players = append([]domain.Player(nil), s.data.Players...)
	out.Tasks = append([]domain.GameTask(nil), s.data.Tasks...)
	return out
}

// Results собирает итоги игроков завершённой сессии для архива
func (s *Session) Results() []domain.GameResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	results := make([]domain.GameResult, 0, len(s.data.Players))
	for _, p := range s.data.Players {
		results = append(results, domain.GameResult{
			SessionID:  s.data.ID,
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      p.Score,
			TotalTasks: len(s.data.Tasks),
			GameMode:   s.data.Config.GameMode,
			FinishedAt: now,
		})
	}
	return results
}
