package game

import "errors"

// Типовые отказы ядра. Это ожидаемые гонки polling-клиентов,
// наружу уходят как статусные ответы, не как исключения
var (
	ErrSessionNotFound = errors.New("сессия не найдена")
	ErrPlayerNotFound  = errors.New("игрок не найден")
	ErrNotJoinable     = errors.New("сессия недоступна для входа")
	ErrNoPlayers       = errors.New("в сессии нет игроков")
	ErrNotStarted      = errors.New("сессия ещё не началась")
	ErrSessionFinished = errors.New("сессия уже завершена")
	ErrNoCurrentTask   = errors.New("нет текущего задания")
	ErrNoSentenceParts = errors.New("задание не содержит эталонных групп")
	ErrInvalidTask     = errors.New("некорректное задание")
)
