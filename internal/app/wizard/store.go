package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"artisan-backend/internal/app/apperr"
)

// StateStore хранит состояние мастера по artisan_id.
// Update выполняет чтение-изменение-запись атомарно; cur == nil если состояния ещё нет.
type StateStore interface {
	Load(ctx context.Context, artisanID string) (*State, error)
	Update(ctx context.Context, artisanID string, fn func(cur *State) (*State, error)) (*State, error)
}

type MemoryStateStore struct {
	mu     sync.Mutex
	states map[string][]byte
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string][]byte)}
}

func (s *MemoryStateStore) Load(_ context.Context, artisanID string) (*State, error) {
	s.mu.Lock()
	raw, ok := s.states[artisanID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decodeState(raw)
}

func (s *MemoryStateStore) Update(_ context.Context, artisanID string, fn func(cur *State) (*State, error)) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cur *State
	if raw, ok := s.states[artisanID]; ok {
		var err error
		if cur, err = decodeState(raw); err != nil {
			return nil, err
		}
	}

	next, err := fn(cur)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return nil, apperr.Unexpected(fmt.Errorf("encode wizard state: %w", err))
	}
	s.states[artisanID] = raw
	return next, nil
}

// KV - хранилище ключ-значение с атомарным обновлением (Redis)
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Update(ctx context.Context, key string, ttl time.Duration, fn func(current []byte) ([]byte, error)) error
}

const keyPrefix = "wizard."

// KVStateStore хранит состояние в KV с TTL, продлеваемым при каждом сохранении
type KVStateStore struct {
	kv  KV
	ttl time.Duration
}

func NewKVStateStore(kv KV, ttl time.Duration) *KVStateStore {
	return &KVStateStore{kv: kv, ttl: ttl}
}

func (s *KVStateStore) Load(ctx context.Context, artisanID string) (*State, error) {
	raw, found, err := s.kv.Get(ctx, keyPrefix+artisanID)
	if err != nil {
		return nil, apperr.Unexpected(fmt.Errorf("load wizard state: %w", err))
	}
	if !found {
		return nil, nil
	}
	return decodeState(raw)
}

func (s *KVStateStore) Update(ctx context.Context, artisanID string, fn func(cur *State) (*State, error)) (*State, error) {
	var saved *State
	err := s.kv.Update(ctx, keyPrefix+artisanID, s.ttl, func(current []byte) ([]byte, error) {
		var cur *State
		if current != nil {
			var err error
			if cur, err = decodeState(current); err != nil {
				return nil, err
			}
		}
		next, err := fn(cur)
		if err != nil {
			return nil, err
		}
		saved = next
		return json.Marshal(next)
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperr.Unexpected(fmt.Errorf("save wizard state: %w", err))
	}
	return saved, nil
}

func decodeState(raw []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, apperr.Unexpected(fmt.Errorf("decode wizard state: %w", err))
	}
	return &st, nil
}
