// Package viewstate guarda el estado local de cada página por sesión:
// listas, filtros y selección viven acá entre request y request. Se
// descarta entero en logout.
package viewstate

import "sync"

type Store[T any] struct {
	mu   sync.RWMutex
	byID map[string]T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		byID: make(map[string]T),
	}
}

// Get retorna una copia del estado de esa sesión.
func (s *Store[T]) Get(sessionID string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.byID[sessionID]
	return st, ok
}

func (s *Store[T]) Set(sessionID string, st T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sessionID] = st
}

// Update muta el estado bajo lock, en un solo paso observable.
// Si la sesión no tiene estado cargado, no hace nada.
func (s *Store[T]) Update(sessionID string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[sessionID]
	if !ok {
		return false
	}
	fn(&st)
	s.byID[sessionID] = st
	return true
}

func (s *Store[T]) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, sessionID)
}
