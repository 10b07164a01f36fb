package ws

import (
	"encoding/json"
	"sync"

	"deutschprofi_backend/internal/domain"
	"deutschprofi_backend/internal/logger"

	"github.com/gorilla/websocket"
)

// Hub раздаёт снимки сессий подписанным клиентам. Подписка на сессию
// заменяет клиенту polling: каждое изменение состояния уходит пушем.
// Polling через GET /api/sessions/:id при этом продолжает работать
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Subscribe регистрирует соединение как слушателя сессии и возвращает
// клиента, которого нужно запустить через Run()
func (h *Hub) Subscribe(sessionID string, conn *websocket.Conn) *Client {
	c := newClient(sessionID, conn, h)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[sessionID] == nil {
		h.rooms[sessionID] = make(map[*Client]bool)
	}
	h.rooms[sessionID][c] = true
	return c
}

func (h *Hub) unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[c.sessionID]
	if !ok {
		return
	}
	if room[c] {
		delete(room, c)
		close(c.send)
	}
	if len(room) == 0 {
		delete(h.rooms, c.sessionID)
	}
}

// sessionEvent - формат пуш-сообщения
type sessionEvent struct {
	Type    string         `json:"type"`
	Session domain.Session `json:"session"`
}

// PublishSession рассылает снимок сессии всем её слушателям.
// Медленный клиент с заполненным буфером пропускает снимок,
// следующий пуш или polling его догонит
func (h *Hub) PublishSession(snapshot domain.Session) {
	payload, err := json.Marshal(sessionEvent{Type: "session", Session: snapshot})
	if err != nil {
		logger.Error("ws: сериализация снимка", "session", snapshot.ID, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[snapshot.ID] {
		select {
		case c.send <- payload:
		default:
		}
	}
}

// Listeners возвращает число подписчиков сессии
func (h *Hub) Listeners(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[sessionID])
}
