package repositories

import (
	"log"
	"sync"
)

// EntityStore is a mutex-guarded, slice-backed store for one entity type.
// It backs the plain keyed CRUD collaborators (teachers, subjects, rooms,
// floors, students, announcements, study materials). When a snapshot path
// is set every mutation is written back to disk, which together with the
// load on construction gives the simple load/save round trip the API needs.
type EntityStore[T any] struct {
	mu    sync.RWMutex
	id    func(*T) string
	path  string
	items []T
}

// NewEntityStore builds a store holding seed, replaced by the snapshot at
// path when one can be loaded.
func NewEntityStore[T any](id func(*T) string, seed []T, path string) *EntityStore[T] {
	s := &EntityStore[T]{id: id, path: path, items: append([]T(nil), seed...)}
	if path != "" {
		var loaded []T
		if err := loadJSON(path, &loaded); err == nil {
			s.items = loaded
		}
	}
	return s
}

func (s *EntityStore[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

func (s *EntityStore[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.id(&s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (s *EntityStore[T]) Add(item T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	s.persistLocked()
	return item
}

// Update applies the given mutation to the stored entity and returns the
// updated copy, or false when no entity carries id.
func (s *EntityStore[T]) Update(id string, apply func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(&s.items[i]) == id {
			apply(&s.items[i])
			s.persistLocked()
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

func (s *EntityStore[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(&s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

func (s *EntityStore[T]) persistLocked() {
	if s.path == "" {
		return
	}
	if err := saveJSON(s.path, s.items); err != nil {
		log.Printf("failed to save store snapshot %s: %v", s.path, err)
	}
}
