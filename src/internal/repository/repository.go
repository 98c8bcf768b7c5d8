package repository

import (
	"context"
	"errors"
	"time"

	"donation-service/src/internal/entity"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrRewardInactive     = errors.New("reward is not active")
	ErrRewardSoldOut      = errors.New("reward has no remaining quantity")
	ErrRewardAssigned     = errors.New("reward is assigned to users")
	ErrCodeExhausted      = errors.New("could not generate a unique reward code")
)

type DonationRepository interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	FindUser(ctx context.Context, id string) (*entity.User, error)
	CreateDonation(ctx context.Context, donation *entity.Donation) error
	ListDonations(ctx context.Context) ([]entity.Donation, error)
}

type EmergencyRepository interface {
	List(ctx context.Context) ([]entity.Emergency, error)
	FindByID(ctx context.Context, id string) (*entity.Emergency, error)
	ListCritical(ctx context.Context) ([]entity.Emergency, error)
}

// RewardRepository owns rewards, user rewards and point balances. Redeem is
// the only path that moves points and implementations serialize it.
type RewardRepository interface {
	ListRewards(ctx context.Context) ([]entity.Reward, error)
	FindReward(ctx context.Context, id string) (*entity.Reward, error)
	CreateReward(ctx context.Context, reward *entity.Reward) error
	UpdateReward(ctx context.Context, reward *entity.Reward) error
	DeleteReward(ctx context.Context, id string) error

	GetPoints(ctx context.Context, userID string) (*entity.UserPoints, error)
	Redeem(ctx context.Context, userID, rewardID string, at time.Time) (*entity.UserReward, *entity.UserPoints, error)

	AssignReward(ctx context.Context, userReward *entity.UserReward) error
	ListUserRewards(ctx context.Context, userID string) ([]entity.UserReward, error)
	UpdateUserRewardStatus(ctx context.Context, id string, status entity.UserRewardStatus) (*entity.UserReward, error)

	ListParticipants(ctx context.Context) ([]entity.LeaderboardParticipant, error)
}

type FormRepository interface {
	Save(ctx context.Context, form *entity.DonationForm, ttl time.Duration) error
	Find(ctx context.Context, id string) (*entity.DonationForm, error)
}

type BannerRepository interface {
	Dismiss(ctx context.Context, sessionID string, ttl time.Duration) error
	IsDismissed(ctx context.Context, sessionID string) (bool, error)
}

// wait simulates backend latency and gives up when ctx is done.
func wait(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
