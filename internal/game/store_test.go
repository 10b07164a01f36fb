package game

import (
	"strings"
	"testing"
)

func TestStore_GetByID(t *testing.T) {
	st := NewStore()
	s := newTestSession(t, 1)
	st.Add(s)

	got, ok := st.GetByID(s.ID())
	if !ok || got != s {
		t.Fatalf("сессия должна находиться по id")
	}
	if _, ok := st.GetByID("нет-такой"); ok {
		t.Fatalf("неизвестный id не должен находиться")
	}
	if st.Len() != 1 {
		t.Fatalf("ожидалась одна сессия, получено %d", st.Len())
	}
}

func TestStore_JoinableCodeLookupExcludesStarted(t *testing.T) {
	st := NewStore()
	s := newTestSession(t, 1)
	st.Add(s)

	if _, ok := st.FindJoinableByCode(s.Code()); !ok {
		t.Fatalf("не начатая сессия должна матчиться по коду")
	}

	if _, err := s.Join("Anna"); err != nil {
		t.Fatalf("вход: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("старт: %v", err)
	}

	if _, ok := st.FindJoinableByCode(s.Code()); ok {
		t.Fatalf("начатая сессия не должна матчиться для входа")
	}

	// операторский поиск видит сессию в любом состоянии
	if _, ok := st.FindByCode(s.Code()); !ok {
		t.Fatalf("операторский поиск должен находить начатую сессию")
	}
}

func TestNewSessionCode_Format(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := NewSessionCode()
		if len(code) != 6 {
			t.Fatalf("ожидался код из 6 символов, получен %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("символ %q вне алфавита кода", r)
			}
		}
		seen[code] = true
	}
	// случайность: среди сотни кодов не должно быть одного и того же значения постоянно
	if len(seen) < 50 {
		t.Fatalf("коды выглядят неслучайными: %d уникальных из 100", len(seen))
	}
}
