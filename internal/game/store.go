package game

import "sync"

// Store - единственный источник истины о существующих сессиях.
// Карта живёт в памяти процесса, сессии не переживают рестарт
type Store struct {
	mu   sync.RWMutex
	byID map[string]*Session
}

func NewStore() *Store {
	return &Store{byID: make(map[string]*Session)}
}

func (st *Store) Add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.byID[s.ID()] = s
}

func (st *Store) GetByID(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.byID[id]
	return s, ok
}

// FindJoinableByCode ищет сессию по коду среди ещё принимающих игроков -
// путь входа. Уже начавшиеся сессии не матчатся
func (st *Store) FindJoinableByCode(code string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.byID {
		if s.Code() == code && s.Joinable() {
			return s, true
		}
	}
	return nil, false
}

// FindByCode ищет сессию по коду в любом состоянии - операторский путь
func (st *Store) FindByCode(code string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.byID {
		if s.Code() == code {
			return s, true
		}
	}
	return nil, false
}

// All возвращает срез всех сессий без определённого порядка
func (st *Store) All() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*Session, 0, len(st.byID))
	for _, s := range st.byID {
		out = append(out, s)
	}
	return out
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byID)
}
