package game

import (
	"errors"
	"testing"

	"deutschprofi_backend/internal/domain"
)

// сценарий из набора категорий {nomen, verben}: w1 - nomen (в наборе),
// w2 - artikel (вне набора, в карте ответов отсутствует)
func answerSession(t *testing.T) (*Session, domain.Player) {
	t.Helper()
	task := domain.GameTask{
		ID:       "t1",
		Sentence: "Der Hund läuft.",
		Words: []domain.Word{
			{ID: "w1", Text: "Hund", CorrectWordType: domain.WordTypeNomen, Position: 1},
			{ID: "w2", Text: "Der", CorrectWordType: domain.WordTypeArtikel, Position: 0},
		},
		CorrectAnswers: map[string]string{"w1": domain.WordTypeNomen},
	}

	s, err := NewSession(testConfig(), []domain.GameTask{task})
	if err != nil {
		t.Fatalf("создание сессии: %v", err)
	}
	p, err := s.Join("Anna")
	if err != nil {
		t.Fatalf("вход: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("старт: %v", err)
	}
	return s, p
}

func playerScore(t *testing.T, s *Session, playerID string) int {
	t.Helper()
	for _, p := range s.Snapshot().Players {
		if p.ID == playerID {
			return p.Score
		}
	}
	t.Fatalf("игрок %s не найден в снимке", playerID)
	return 0
}

func TestSubmitAnswer_CorrectAnswer(t *testing.T) {
	s, p := answerSession(t)

	correct, err := s.SubmitAnswer(p.ID, "w1", domain.WordTypeNomen)
	if err != nil {
		t.Fatalf("ответ: %v", err)
	}
	if !correct {
		t.Fatalf("ожидался правильный ответ")
	}
	if got := playerScore(t, s, p.ID); got != 1 {
		t.Fatalf("ожидался счёт 1, получен %d", got)
	}
}

func TestSubmitAnswer_WrongAnswerFloorsAtZero(t *testing.T) {
	s, p := answerSession(t)

	correct, err := s.SubmitAnswer(p.ID, "w1", domain.WordTypeVerben)
	if err != nil {
		t.Fatalf("ответ: %v", err)
	}
	if correct {
		t.Fatalf("ожидался неправильный ответ")
	}
	if got := playerScore(t, s, p.ID); got != 0 {
		t.Fatalf("счёт не должен уходить в минус, получен %d", got)
	}
}

func TestSubmitAnswer_OutsideSelectedSet(t *testing.T) {
	s, p := answerSession(t)

	// слово вне набора: правильный ответ - "andere"
	correct, err := s.SubmitAnswer(p.ID, "w2", domain.WordTypeAndere)
	if err != nil {
		t.Fatalf("ответ: %v", err)
	}
	if !correct {
		t.Fatalf("andere для слова вне набора должен быть правильным")
	}
	if got := playerScore(t, s, p.ID); got != 1 {
		t.Fatalf("ожидался счёт 1, получен %d", got)
	}

	// конкретная категория для слова вне набора - ошибка, счёт 1 -> 0
	correct, err = s.SubmitAnswer(p.ID, "w2", domain.WordTypeNomen)
	if err != nil {
		t.Fatalf("ответ: %v", err)
	}
	if correct {
		t.Fatalf("конкретная категория для слова вне набора должна быть ошибкой")
	}
	if got := playerScore(t, s, p.ID); got != 0 {
		t.Fatalf("ожидался счёт 0, получен %d", got)
	}
}

func TestSubmitAnswer_ReplayNotTracked(t *testing.T) {
	s, p := answerSession(t)

	// ядро не отслеживает повторы: каждый вызов оценивается заново
	for i := 0; i < 3; i++ {
		if _, err := s.SubmitAnswer(p.ID, "w1", domain.WordTypeNomen); err != nil {
			t.Fatalf("повтор %d: %v", i, err)
		}
	}
	if got := playerScore(t, s, p.ID); got != 3 {
		t.Fatalf("ожидался счёт 3 после трёх повторов, получен %d", got)
	}
}

func TestSubmitAnswer_Preconditions(t *testing.T) {
	s := newTestSession(t, 1)
	p, _ := s.Join("Anna")

	if _, err := s.SubmitAnswer(p.ID, "w2", domain.WordTypeNomen); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("до старта ожидался ErrNotStarted, получен %v", err)
	}

	_ = s.Start()
	if _, err := s.SubmitAnswer("нет-такого", "w2", domain.WordTypeNomen); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("ожидался ErrPlayerNotFound, получен %v", err)
	}

	_ = s.Advance() // единственное задание позади, сессия завершена
	if _, err := s.SubmitAnswer(p.ID, "w2", domain.WordTypeNomen); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("после завершения ожидался ErrSessionFinished, получен %v", err)
	}
}

// сессия режима satzglieder с одной эталонной группой {w1,w2}: subjekt
func groupingSession(t *testing.T) (*Session, domain.Player) {
	t.Helper()
	task := domain.GameTask{
		ID:       "t1",
		Sentence: "Der Hund läuft.",
		Words: []domain.Word{
			{ID: "w1", Text: "Der", CorrectWordType: domain.WordTypeArtikel, Position: 0},
			{ID: "w2", Text: "Hund", CorrectWordType: domain.WordTypeNomen, Position: 1},
			{ID: "w3", Text: "läuft", CorrectWordType: domain.WordTypeVerben, Position: 2},
		},
		CorrectAnswers: map[string]string{},
		SentenceParts: []domain.SentencePart{
			{WordIDs: []string{"w1", "w2"}, CorrectType: domain.PartSubjekt},
			{WordIDs: []string{"w3"}, CorrectType: domain.PartPraedikat},
		},
	}

	cfg := testConfig()
	cfg.GameMode = domain.ModeSatzglieder
	cfg.WordTypes = []string{domain.PartSubjekt, domain.PartPraedikat}

	s, err := NewSession(cfg, []domain.GameTask{task})
	if err != nil {
		t.Fatalf("создание сессии: %v", err)
	}
	p, err := s.Join("Anna")
	if err != nil {
		t.Fatalf("вход: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("старт: %v", err)
	}
	return s, p
}

func TestSubmitGroupings_ExactMatch(t *testing.T) {
	s, p := groupingSession(t)

	result, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		// порядок слов в группе не важен
		"g1": {WordIDs: []string{"w2", "w1"}, Type: domain.PartSubjekt},
	})
	if err != nil {
		t.Fatalf("группировки: %v", err)
	}
	if result.CorrectCount != 1 || result.TotalCount != 1 || result.Score != 1 {
		t.Fatalf("ожидалось 1/1 и счёт 1, получено %+v", result)
	}
}

func TestSubmitGroupings_NoMatchingPart(t *testing.T) {
	s, p := groupingSession(t)

	result, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		"g1": {WordIDs: []string{"w1"}, Type: domain.PartSubjekt},
	})
	if err != nil {
		t.Fatalf("группировки: %v", err)
	}
	if result.CorrectCount != 0 || result.TotalCount != 1 || result.Score != 0 {
		t.Fatalf("ожидалось 0/1 и счёт 0 (пол в нуле), получено %+v", result)
	}
}

func TestSubmitGroupings_WrongTypeForCorrectGroup(t *testing.T) {
	s, p := groupingSession(t)

	// сначала зарабатываем очко, чтобы увидеть вычитание
	if _, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		"g1": {WordIDs: []string{"w3"}, Type: domain.PartPraedikat},
	}); err != nil {
		t.Fatalf("группировки: %v", err)
	}

	result, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		"g1": {WordIDs: []string{"w1", "w2"}, Type: domain.PartPraedikat},
	})
	if err != nil {
		t.Fatalf("группировки: %v", err)
	}
	if result.CorrectCount != 0 || result.Score != 0 {
		t.Fatalf("верный состав с неверным типом должен стоить -1, получено %+v", result)
	}
}

func TestSubmitGroupings_MissingGroupsNotPenalized(t *testing.T) {
	s, p := groupingSession(t)

	// прислана одна группа из двух эталонных: totalCount считает присланные
	result, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		"g1": {WordIDs: []string{"w1", "w2"}, Type: domain.PartSubjekt},
	})
	if err != nil {
		t.Fatalf("группировки: %v", err)
	}
	if result.CorrectCount != 1 || result.TotalCount != 1 || result.Score != 1 {
		t.Fatalf("за пропущенные эталонные группы штрафа быть не должно: %+v", result)
	}
}

func TestSubmitGroupings_MixedBatch(t *testing.T) {
	s, p := groupingSession(t)

	result, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{
		"a": {WordIDs: []string{"w1", "w2"}, Type: domain.PartSubjekt}, // +1
		"b": {WordIDs: []string{"w3"}, Type: domain.PartPraedikat},    // +1
		"c": {WordIDs: []string{"w2", "w3"}, Type: domain.PartObjekt}, // -1, нет такой группы
	})
	if err != nil {
		t.Fatalf("группировки: %v", err)
	}
	if result.CorrectCount != 2 || result.TotalCount != 3 || result.Score != 1 {
		t.Fatalf("ожидалось 2/3 и счёт 1, получено %+v", result)
	}
}

func TestSubmitGroupings_Preconditions(t *testing.T) {
	// задание без эталонных групп (режим wortarten)
	s := newTestSession(t, 1)
	p, _ := s.Join("Anna")
	_ = s.Start()

	if _, err := s.SubmitGroupings(p.ID, map[string]domain.Grouping{}); !errors.Is(err, ErrNoSentenceParts) {
		t.Fatalf("ожидался ErrNoSentenceParts, получен %v", err)
	}

	gs, gp := groupingSession(t)
	if _, err := gs.SubmitGroupings("нет-такого", nil); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("ожидался ErrPlayerNotFound, получен %v", err)
	}
	_ = gs.Advance()
	if _, err := gs.SubmitGroupings(gp.ID, nil); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("после завершения ожидался ErrSessionFinished, получен %v", err)
	}
}
