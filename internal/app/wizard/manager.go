package wizard

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"artisan-backend/internal/app/apperr"
)

// Manager - правила переходов и версионирование состояния мастера
type Manager struct {
	store StateStore
	now   func() time.Time
}

func NewManager(store StateStore) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Get возвращает сохранённое состояние или начальное (version 0, шаг register)
func (m *Manager) Get(ctx context.Context, artisanID string) (*State, error) {
	st, err := m.store.Load(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return initialState(artisanID), nil
	}
	return st, nil
}

// Save сохраняет состояние, присланное клиентом.
// next.Version должна совпадать с текущей версией, иначе Conflict.
func (m *Manager) Save(ctx context.Context, artisanID string, next State) (*State, error) {
	if next.Step != "" && !next.Step.Valid() {
		return nil, apperr.Validation("step", "unknown wizard step %s", next.Step)
	}
	if next.Tier != "" && !next.Tier.Valid() {
		return nil, apperr.Validation("tier", "unknown tier %s", next.Tier)
	}

	return m.store.Update(ctx, artisanID, func(cur *State) (*State, error) {
		if cur == nil {
			cur = initialState(artisanID)
		}
		if next.Version != cur.Version {
			return nil, apperr.Conflict("wizard state version %d is stale, current version is %d", next.Version, cur.Version)
		}

		if next.Step == "" {
			next.Step = cur.Step
		}
		if !CanTransition(cur.Step, next.Step) {
			return nil, apperr.Validation("step", "cannot move from %s to %s", cur.Step, next.Step)
		}

		out := next
		out.ArtisanID = artisanID
		out.Version = cur.Version + 1
		out.UpdatedAt = m.now().UTC()
		return &out, nil
	})
}

// Advance переводит мастер вперёд по действию сервера (онбординг, отправка товара).
// Версия клиента не проверяется, назад шаг не откатывается.
func (m *Manager) Advance(ctx context.Context, artisanID string, to Step, mutate func(st *State)) (*State, error) {
	return m.store.Update(ctx, artisanID, func(cur *State) (*State, error) {
		if cur == nil {
			cur = initialState(artisanID)
		}
		out := *cur
		if out.Step.index() < to.index() {
			out.Step = to
		}
		if mutate != nil {
			mutate(&out)
		}
		out.Version = cur.Version + 1
		out.UpdatedAt = m.now().UTC()

		logrus.WithFields(logrus.Fields{
			"artisan_id": artisanID,
			"step":       out.Step,
			"version":    out.Version,
		}).Debug("wizard advanced")
		return &out, nil
	})
}
