package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"artisan-backend/internal/app/apperr"
)

// MemoryStore - хранилище в памяти процесса, используется без базы данных и в тестах.
// Записи хранятся копиями, изменения возвращённого значения не влияют на хранилище.
type MemoryStore[T Entity] struct {
	mu      sync.RWMutex
	subject string
	items   map[string]T
	order   []string
}

func NewMemoryStore[T Entity](subject string) *MemoryStore[T] {
	return &MemoryStore[T]{
		subject: subject,
		items:   make(map[string]T),
	}
}

func (s *MemoryStore[T]) Get(_ context.Context, key string) (*T, error) {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound(s.subject, "%s %s not found", s.subject, key)
	}

	out, err := deepCopy(v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, v *T) error {
	cp, err := deepCopy(*v)
	if err != nil {
		return err
	}

	key := cp.Key()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[key]; !ok {
		s.order = append(s.order, key)
	}
	s.items[key] = cp
	return nil
}

func (s *MemoryStore[T]) List(_ context.Context, owner string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, key := range s.order {
		v := s.items[key]
		if owner != "" && v.Owner() != owner {
			continue
		}
		cp, err := deepCopy(v)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

// deepCopy копирует запись через JSON, как если бы она прошла через базу
func deepCopy[T any](v T) (T, error) {
	var out T
	raw, err := json.Marshal(v)
	if err != nil {
		return out, apperr.Unexpected(fmt.Errorf("copy record: %w", err))
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, apperr.Unexpected(fmt.Errorf("copy record: %w", err))
	}
	return out, nil
}
