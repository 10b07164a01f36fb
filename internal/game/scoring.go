package game

import (
	"sort"

	"deutschprofi_backend/internal/domain"
)

// GroupingResult - итог проверки присланных группировок
type GroupingResult struct {
	CorrectCount int `json:"correctCount"`
	TotalCount   int `json:"totalCount"`
	Score        int `json:"score"`
}

// SubmitAnswer оценивает классификацию одного слова. Возвращает
// правильность ответа; счёт игрока меняется на +1/-1 с полом в нуле.
// Повторная отправка того же слова не отслеживается, защита от
// дублей остаётся на границе (UI)
func (s *Session) SubmitAnswer(playerID, wordID, wordType string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.IsStarted {
		return false, ErrNotStarted
	}
	if s.data.IsFinished {
		return false, ErrSessionFinished
	}
	if s.data.CurrentTask >= len(s.data.Tasks) {
		return false, ErrNoCurrentTask
	}
	task := s.data.Tasks[s.data.CurrentTask]

	player := s.findPlayerLocked(playerID)
	if player == nil {
		return false, ErrPlayerNotFound
	}

	correct, known := task.CorrectAnswers[wordID]
	if !known {
		// эталонный тип слова вне выбранного набора категорий:
		// правильный ответ - специальная метка "andere"
		if wordType == domain.WordTypeAndere {
			player.Score++
			return true, nil
		}
		player.Score = floorZero(player.Score - 1)
		return false, nil
	}

	if wordType == correct {
		player.Score++
		return true, nil
	}
	player.Score = floorZero(player.Score - 1)
	return false, nil
}

// SubmitGroupings оценивает набор группировок целиком. Каждая группа
// даёт +1 при точном совпадении состава и типа с эталонной, иначе -1
// (с полом в нуле). TotalCount - число присланных групп: за пропущенные
// эталонные группы игрок не штрафуется. Группы обходятся в порядке
// возрастания id, чтобы результат был воспроизводимым
func (s *Session) SubmitGroupings(playerID string, groupings map[string]domain.Grouping) (GroupingResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.data.IsStarted {
		return GroupingResult{}, ErrNotStarted
	}
	if s.data.IsFinished {
		return GroupingResult{}, ErrSessionFinished
	}
	if s.data.CurrentTask >= len(s.data.Tasks) {
		return GroupingResult{}, ErrNoCurrentTask
	}
	task := s.data.Tasks[s.data.CurrentTask]
	if len(task.SentenceParts) == 0 {
		return GroupingResult{}, ErrNoSentenceParts
	}

	player := s.findPlayerLocked(playerID)
	if player == nil {
		return GroupingResult{}, ErrPlayerNotFound
	}

	groupIDs := make([]string, 0, len(groupings))
	for id := range groupings {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)

	var correctCount int
	for _, id := range groupIDs {
		group := groupings[id]

		part, found := matchSentencePart(task.SentenceParts, group.WordIDs)
		if !found {
			player.Score = floorZero(player.Score - 1)
			continue
		}
		if part.CorrectType != group.Type {
			// состав группы верен, но категория нет
			player.Score = floorZero(player.Score - 1)
			continue
		}

		player.Score++
		correctCount++
	}

	return GroupingResult{
		CorrectCount: correctCount,
		TotalCount:   len(groupings),
		Score:        player.Score,
	}, nil
}

// matchSentencePart ищет эталонную группу с точно таким же набором слов,
// порядок не учитывается
func matchSentencePart(parts []domain.SentencePart, wordIDs []string) (domain.SentencePart, bool) {
	submitted := sortedCopy(wordIDs)
	for _, part := range parts {
		if equalIDs(sortedCopy(part.WordIDs), submitted) {
			return part, true
		}
	}
	return domain.SentencePart{}, false
}

func sortedCopy(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floorZero(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

// findPlayerLocked возвращает указатель на игрока в ростере,
// вызывается только под мьютексом сессии
func (s *Session) findPlayerLocked(playerID string) *domain.Player {
	for i := range s.data.Players {
		if s.data.Players[i].ID == playerID {
			return &s.data.Players[i]
		}
	}
	return nil
}
