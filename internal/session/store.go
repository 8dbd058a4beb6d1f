package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("session not found")
)

// Store guarda sesiones activas. Es el equivalente del key-value
// store del navegador (keys token/user/user_source), indexado por
// el ID que viaja en la cookie.
type Store interface {
	Create(token string, user UserRecord, source Source) (Session, error)
	Get(id string) (Session, bool)
	// UpdateUser reemplaza el perfil guardado (p.ej. tras editar perfil).
	UpdateUser(id string, user UserRecord) error
	// Delete limpia token, user y source de una sola vez (logout).
	Delete(id string)
}

type memoryStore struct {
	mu   sync.RWMutex
	byID map[string]Session
	now  func() time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{
		byID: make(map[string]Session),
		now:  time.Now,
	}
}

func (s *memoryStore) Create(token string, user UserRecord, source Source) (Session, error) {
	// Invariante source <=> token: nunca persistimos uno sin el otro.
	if strings.TrimSpace(token) == "" || strings.TrimSpace(string(source)) == "" {
		return Session{}, errors.New("session requires token and source")
	}

	sess := Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		Source:    source,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[sess.ID] = sess
	return sess, nil
}

func (s *memoryStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.byID[id]
	return sess, ok
}

func (s *memoryStore) UpdateUser(id string, user UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	sess.User = user
	s.byID[id] = sess
	return nil
}

func (s *memoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}
