package taskstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"deutschprofi_backend/internal/domain"
)

func storedTask(id string) domain.GameTask {
	return domain.GameTask{
		ID:       id,
		Sentence: "Der Hund schläft.",
		Words: []domain.Word{
			{ID: id + "-w1", Text: "Der", CorrectWordType: domain.WordTypeArtikel, Position: 0},
		},
		CorrectAnswers: map[string]string{id + "-w1": domain.WordTypeArtikel},
		TimeLimit:      30,
	}
}

func newTestServer(t *testing.T, record binRecord) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/b/bin123/latest" {
			t.Errorf("неожиданный путь запроса: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Master-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(binResponse{Record: record})
	}))
}

func TestTasksForMode(t *testing.T) {
	srv := newTestServer(t, binRecord{
		Wortarten:   []domain.GameTask{storedTask("t1"), storedTask("t2")},
		Satzglieder: []domain.GameTask{storedTask("t3")},
	})
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "bin123")

	tasks, err := client.TasksForMode(context.Background(), domain.ModeWortarten)
	if err != nil {
		t.Fatalf("запрос заданий: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("ожидалось 2 задания wortarten, получено %d", len(tasks))
	}

	tasks, err = client.TasksForMode(context.Background(), domain.ModeSatzglieder)
	if err != nil {
		t.Fatalf("запрос заданий: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t3" {
		t.Fatalf("ожидалось одно задание satzglieder t3, получено %+v", tasks)
	}
}

func TestPickRandom_SubsetAndCap(t *testing.T) {
	srv := newTestServer(t, binRecord{
		Wortarten: []domain.GameTask{storedTask("t1"), storedTask("t2"), storedTask("t3")},
	})
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "bin123")

	picked, err := client.PickRandom(context.Background(), domain.ModeWortarten, 2)
	if err != nil {
		t.Fatalf("выбор заданий: %v", err)
	}
	if len(picked) != 2 {
		t.Fatalf("ожидалось 2 задания, получено %d", len(picked))
	}
	if picked[0].ID == picked[1].ID {
		t.Fatalf("выбраны одинаковые задания: %s", picked[0].ID)
	}

	// запрос больше, чем есть - возвращаем всё
	picked, err = client.PickRandom(context.Background(), domain.ModeWortarten, 10)
	if err != nil {
		t.Fatalf("выбор заданий: %v", err)
	}
	if len(picked) != 3 {
		t.Fatalf("ожидалось 3 задания, получено %d", len(picked))
	}
}

func TestPickRandom_EmptyMode(t *testing.T) {
	srv := newTestServer(t, binRecord{
		Wortarten: []domain.GameTask{storedTask("t1")},
	})
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "bin123")

	if _, err := client.PickRandom(context.Background(), domain.ModeFall, 2); !errors.Is(err, ErrNoStoredTasks) {
		t.Fatalf("ожидался ErrNoStoredTasks, получен %v", err)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bin not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "bin123")

	if _, err := client.TasksForMode(context.Background(), domain.ModeWortarten); err == nil {
		t.Fatal("ожидалась ошибка при статусе 404")
	}
}
