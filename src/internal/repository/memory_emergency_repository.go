package repository

import (
	"context"
	"time"

	"donation-service/src/internal/entity"
)

// MemoryEmergencyRepository is read-only; Raised is never updated by
// donations.
type MemoryEmergencyRepository struct {
	latency     time.Duration
	emergencies []entity.Emergency
}

func NewMemoryEmergencyRepository(seed Seed, latency time.Duration) *MemoryEmergencyRepository {
	return &MemoryEmergencyRepository{
		latency:     latency,
		emergencies: seed.Emergencies,
	}
}

func (r *MemoryEmergencyRepository) List(ctx context.Context) ([]entity.Emergency, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	out := make([]entity.Emergency, 0, len(r.emergencies))
	for _, e := range r.emergencies {
		out = append(out, copyEmergency(e))
	}
	return out, nil
}

func (r *MemoryEmergencyRepository) FindByID(ctx context.Context, id string) (*entity.Emergency, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	for _, e := range r.emergencies {
		if e.ID == id {
			found := copyEmergency(e)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryEmergencyRepository) ListCritical(ctx context.Context) ([]entity.Emergency, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	out := []entity.Emergency{}
	for _, e := range r.emergencies {
		if e.Critical {
			out = append(out, copyEmergency(e))
		}
	}
	return out, nil
}

func copyEmergency(e entity.Emergency) entity.Emergency {
	e.Images = append([]string{}, e.Images...)
	e.Updates = append([]entity.EmergencyUpdate{}, e.Updates...)
	return e
}
