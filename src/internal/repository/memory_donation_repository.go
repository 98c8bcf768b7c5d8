package repository

import (
	"context"
	"sync"
	"time"

	"donation-service/src/internal/entity"
)

type MemoryDonationRepository struct {
	mu        sync.RWMutex
	latency   time.Duration
	users     []entity.User
	donations []entity.Donation
}

func NewMemoryDonationRepository(seed Seed, latency time.Duration) *MemoryDonationRepository {
	return &MemoryDonationRepository{
		latency: latency,
		users:   seed.Users,
	}
}

func (r *MemoryDonationRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

func (r *MemoryDonationRepository) FindUser(ctx context.Context, id string) (*entity.User, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			user := copyUser(u)
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// CreateDonation records a public form submission. When the donation names a
// seeded user it is also attached to that user's history.
func (r *MemoryDonationRepository) CreateDonation(ctx context.Context, donation *entity.Donation) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.donations = append(r.donations, *donation)
	for i := range r.users {
		if r.users[i].ID == donation.UserID {
			r.users[i].Donations = append(r.users[i].Donations, *donation)
		}
	}
	return nil
}

func (r *MemoryDonationRepository) ListDonations(ctx context.Context) ([]entity.Donation, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Donation(nil), r.donations...), nil
}

func copyUser(u entity.User) entity.User {
	u.Donations = append([]entity.Donation{}, u.Donations...)
	return u
}
