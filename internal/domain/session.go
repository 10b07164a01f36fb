package domain

import "time"

// GameMode определяет правила оценивания заданий сессии
type GameMode string

const (
	ModeWortarten   GameMode = "wortarten"   // классификация отдельных слов
	ModeSatzglieder GameMode = "satzglieder" // группировка членов предложения
	ModeFall        GameMode = "fall"        // группировка по падежам
)

func (m GameMode) Valid() bool {
	return m == ModeWortarten || m == ModeSatzglieder || m == ModeFall
}

// UsesGroupings сообщает, оценивается ли режим через группировки слов,
// а не через классификацию отдельных слов
func (m GameMode) UsesGroupings() bool {
	return m == ModeSatzglieder || m == ModeFall
}

// Уровни сложности
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// GameConfig - неизменяемый снимок выбора учителя при создании сессии
type GameConfig struct {
	WordTypes  []string   `json:"wordTypes"`
	TaskCount  int        `json:"taskCount"`
	Difficulty Difficulty `json:"difficulty"`
	TimeLimit  *int       `json:"timeLimit"` // секунды на задание, nil = без лимита
	GameMode   GameMode   `json:"gameMode"`
}

// Clone возвращает глубокую копию конфига, чтобы снимки сессии
// не делили срез WordTypes с оригиналом
func (c GameConfig) Clone() GameConfig {
	out := c
	out.WordTypes = append([]string(nil), c.WordTypes...)
	if c.TimeLimit != nil {
		v := *c.TimeLimit
		out.TimeLimit = &v
	}
	return out
}

// Player - один участник сессии
type Player struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	Score                   int    `json:"score"`
	HasSubmittedCurrentTask bool   `json:"hasSubmittedCurrentTask"`
}

// Session - один игровой запуск учителя. Структура сериализуется
// как есть в ответах API, имена полей совпадают с контрактом фронтенда
type Session struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Config      GameConfig `json:"config"`
	Players     []Player   `json:"players"`
	CurrentTask int        `json:"currentTask"`
	IsActive    bool       `json:"isActive"`
	IsStarted   bool       `json:"isStarted"`
	IsFinished  bool       `json:"isFinished"`
	Tasks       []GameTask `json:"tasks"`
	CreatedAt   time.Time  `json:"createdAt"`
}
