package taskgen

import (
	"errors"
	"testing"

	"deutschprofi_backend/internal/domain"
)

func TestDetermineWordType(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"der", domain.WordTypeArtikel},
		{"Der", domain.WordTypeArtikel},
		{"ich", domain.WordTypePronomen},
		{"auf", domain.WordTypePraepositionen},
		{"und", domain.WordTypeKonjunktionen},
		{"sehr", domain.WordTypeAdverbien},
		{"laufen", domain.WordTypeVerben},
		{"Hund", domain.WordTypeNomen},
		{"Buch", domain.WordTypeNomen},
	}

	for _, tc := range cases {
		if got := DetermineWordType(tc.word); got != tc.want {
			t.Errorf("DetermineWordType(%q) = %q, ожидалось %q", tc.word, got, tc.want)
		}
	}
}

func TestGenerate_TaskCountAndTimeLimit(t *testing.T) {
	cfg := domain.GameConfig{
		WordTypes:  []string{domain.WordTypeNomen, domain.WordTypeArtikel},
		TaskCount:  5,
		Difficulty: domain.DifficultyHard,
		GameMode:   domain.ModeWortarten,
	}

	tasks, err := New().Generate(cfg)
	if err != nil {
		t.Fatalf("генерация: %v", err)
	}
	if len(tasks) != 5 {
		t.Fatalf("ожидалось 5 заданий, получено %d", len(tasks))
	}
	for _, task := range tasks {
		if task.TimeLimit != 15 {
			t.Fatalf("для hard ожидался лимит 15с, получен %d", task.TimeLimit)
		}
		if task.ID == "" || task.Sentence == "" || len(task.Words) == 0 {
			t.Fatalf("неполное задание: %+v", task)
		}
	}
}

func TestGenerate_CorrectAnswersRestrictedToSelectedSet(t *testing.T) {
	cfg := domain.GameConfig{
		WordTypes:  []string{domain.WordTypeArtikel},
		TaskCount:  3,
		Difficulty: domain.DifficultyEasy,
		GameMode:   domain.ModeWortarten,
	}

	tasks, err := New().Generate(cfg)
	if err != nil {
		t.Fatalf("генерация: %v", err)
	}

	for _, task := range tasks {
		byID := map[string]domain.Word{}
		for _, w := range task.Words {
			byID[w.ID] = w
		}
		for wid, label := range task.CorrectAnswers {
			if label != domain.WordTypeArtikel {
				t.Fatalf("в карте ответов тип вне набора: %q", label)
			}
			if byID[wid].CorrectWordType != domain.WordTypeArtikel {
				t.Fatalf("в карту ответов попало слово чужой категории")
			}
		}
		// хотя бы одно слово вне набора должно отсутствовать в карте -
		// это отсутствие значимо для оценки
		if len(task.CorrectAnswers) == len(task.Words) {
			t.Fatalf("ожидались слова вне карты ответов")
		}
	}
}

func TestGenerate_GroupingModesUnsupported(t *testing.T) {
	cfg := domain.GameConfig{
		WordTypes:  []string{domain.PartSubjekt},
		TaskCount:  1,
		Difficulty: domain.DifficultyEasy,
		GameMode:   domain.ModeSatzglieder,
	}

	if _, err := New().Generate(cfg); !errors.Is(err, ErrModeUnsupported) {
		t.Fatalf("ожидался ErrModeUnsupported, получен %v", err)
	}
}

func TestTimeLimitFor(t *testing.T) {
	if TimeLimitFor(domain.DifficultyEasy) != 30 ||
		TimeLimitFor(domain.DifficultyMedium) != 20 ||
		TimeLimitFor(domain.DifficultyHard) != 15 {
		t.Fatalf("лимиты должны быть 30/20/15 секунд")
	}
}
