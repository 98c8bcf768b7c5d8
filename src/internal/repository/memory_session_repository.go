package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"donation-service/src/internal/entity"
)

type expiring struct {
	value     []byte
	expiresAt time.Time
}

func (e expiring) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

const sweepInterval = time.Minute

// MemorySessionRepository stores donation forms and banner dismissals for
// deployments without redis. Values are kept as JSON so callers never share
// pointers with the store. Expired entries are swept on write at most once
// per sweepInterval.
type MemorySessionRepository struct {
	mu        sync.Mutex
	now       func() time.Time
	values    map[string]expiring
	lastSweep time.Time
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{
		now:    time.Now,
		values: map[string]expiring{},
	}
}

func (r *MemorySessionRepository) set(key string, value []byte, ttl time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	if now.Sub(r.lastSweep) >= sweepInterval {
		r.sweep(now)
	}
	e := expiring{value: value}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	r.values[key] = e
}

// sweep must be called with mu held.
func (r *MemorySessionRepository) sweep(now time.Time) {
	for key, e := range r.values {
		if e.expired(now) {
			delete(r.values, key)
		}
	}
	r.lastSweep = now
}

func (r *MemorySessionRepository) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *MemorySessionRepository) get(key string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.values[key]
	if !ok {
		return nil, false
	}
	if e.expired(r.now()) {
		delete(r.values, key)
		return nil, false
	}
	return e.value, true
}

func (r *MemorySessionRepository) Save(ctx context.Context, form *entity.DonationForm, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	r.set(formKey(form.ID), data, ttl)
	return nil
}

func (r *MemorySessionRepository) Find(ctx context.Context, id string) (*entity.DonationForm, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok := r.get(formKey(id))
	if !ok {
		return nil, ErrNotFound
	}
	var form entity.DonationForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (r *MemorySessionRepository) Dismiss(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.set(bannerKey(sessionID), []byte("1"), ttl)
	return nil
}

func (r *MemorySessionRepository) IsDismissed(ctx context.Context, sessionID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := r.get(bannerKey(sessionID))
	return ok, nil
}

func formKey(id string) string {
	return "DONATION:FORM:" + id
}

func bannerKey(sessionID string) string {
	return "BANNER:DISMISSED:" + sessionID
}
