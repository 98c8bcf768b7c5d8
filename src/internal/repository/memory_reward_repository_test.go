package repository

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"donation-service/src/internal/entity"

	"github.com/stretchr/testify/require"
)

var rewardCodePattern = regexp.MustCompile(`^RWRD-[0-9A-Z]{6}$`)

func newMemoryRewards() *MemoryRewardRepository {
	return NewMemoryRewardRepository(DefaultSeed(), 0)
}

func Test_MemoryRewardRepository_Redeem(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()
	at := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	ur, points, err := repo.Redeem(ctx, CurrentUserID, "rw-001", at)
	require.NoError(t, err)
	require.Equal(t, "rw-001", ur.RewardID)
	require.Equal(t, entity.StatusAssigned, ur.Status)
	require.Regexp(t, rewardCodePattern, ur.Code)
	require.Equal(t, "Insignia Amigo Solidario", ur.Reward.Title)

	require.Equal(t, 220, points.Available)
	require.Equal(t, 300, points.Spent)
	require.Equal(t, 520, points.Total)
	require.Len(t, points.History, 5)
	require.Equal(t, entity.TransactionSpent, points.History[0].Type)
	require.Equal(t, 100, points.History[0].Amount)
	require.Equal(t, at, points.History[0].Date)

	list, err := repo.ListUserRewards(ctx, CurrentUserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func Test_MemoryRewardRepository_Redeem_Rejected(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()
	now := time.Now()

	_, _, err := repo.Redeem(ctx, CurrentUserID, "rw-003", now)
	require.ErrorIs(t, err, ErrInsufficientPoints)

	_, _, err = repo.Redeem(ctx, CurrentUserID, "rw-005", now)
	require.ErrorIs(t, err, ErrRewardInactive)

	_, _, err = repo.Redeem(ctx, CurrentUserID, "does-not-exist", now)
	require.ErrorIs(t, err, ErrNotFound)

	points, err := repo.GetPoints(ctx, CurrentUserID)
	require.NoError(t, err)
	require.Equal(t, 320, points.Available)
	require.Equal(t, 200, points.Spent)
	require.Len(t, points.History, 4)

	rw, err := repo.FindReward(ctx, "rw-003")
	require.NoError(t, err)
	require.Equal(t, 10, *rw.AvailableQuantity)
}

func Test_MemoryRewardRepository_Redeem_SoldOut(t *testing.T) {
	ctx := context.Background()
	seed := DefaultSeed()
	seed.Points = append(seed.Points, entity.UserPoints{UserID: "user-009", Total: 5000, Available: 5000})
	repo := NewMemoryRewardRepository(seed, 0)

	rw, err := repo.FindReward(ctx, "rw-004")
	require.NoError(t, err)
	one := 1
	rw.AvailableQuantity = &one
	require.NoError(t, repo.UpdateReward(ctx, rw))

	_, _, err = repo.Redeem(ctx, "user-009", "rw-004", time.Now())
	require.NoError(t, err)
	_, _, err = repo.Redeem(ctx, "user-009", "rw-004", time.Now())
	require.ErrorIs(t, err, ErrRewardSoldOut)

	rw, err = repo.FindReward(ctx, "rw-004")
	require.NoError(t, err)
	require.Equal(t, 0, *rw.AvailableQuantity)
}

func Test_MemoryRewardRepository_Redeem_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()

	// 320 available points cover three rw-001 redemptions at most
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := repo.Redeem(ctx, CurrentUserID, "rw-001", time.Now()); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 3, succeeded)
	points, err := repo.GetPoints(ctx, CurrentUserID)
	require.NoError(t, err)
	require.Equal(t, 20, points.Available)
	require.Equal(t, 500, points.Spent)
	require.Equal(t, points.Total, points.Available+points.Spent)
}

func Test_MemoryRewardRepository_DeleteAssigned(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()

	require.ErrorIs(t, repo.DeleteReward(ctx, "rw-002"), ErrRewardAssigned)
	require.ErrorIs(t, repo.DeleteReward(ctx, "missing"), ErrNotFound)
	require.NoError(t, repo.DeleteReward(ctx, "rw-005"))

	rewards, err := repo.ListRewards(ctx)
	require.NoError(t, err)
	require.Len(t, rewards, 4)
}

func Test_MemoryRewardRepository_AssignReward(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()

	ur := &entity.UserReward{UserID: "user-004", RewardID: "rw-003", AssignedAt: time.Now(), Notes: "Voluntaria del mes"}
	require.NoError(t, repo.AssignReward(ctx, ur))
	require.NotEmpty(t, ur.ID)
	require.Regexp(t, rewardCodePattern, ur.Code)
	require.Equal(t, entity.StatusAssigned, ur.Status)
	require.Equal(t, "Visita al Centro de Distribución", ur.Reward.Title)

	updated, err := repo.UpdateUserRewardStatus(ctx, ur.ID, entity.StatusDelivered)
	require.NoError(t, err)
	require.Equal(t, entity.StatusDelivered, updated.Status)

	_, err = repo.UpdateUserRewardStatus(ctx, "ur-missing", entity.StatusDelivered)
	require.ErrorIs(t, err, ErrNotFound)

	all, err := repo.ListUserRewards(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func Test_MemoryRewardRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()

	rw, err := repo.FindReward(ctx, "rw-003")
	require.NoError(t, err)
	*rw.AvailableQuantity = 0
	rw.Title = "changed"

	again, err := repo.FindReward(ctx, "rw-003")
	require.NoError(t, err)
	require.Equal(t, 10, *again.AvailableQuantity)
	require.Equal(t, "Visita al Centro de Distribución", again.Title)
}

func Test_MemoryRewardRepository_GetPoints_UnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRewards()
	before := len(repo.points)

	points, err := repo.GetPoints(ctx, "user-777")
	require.NoError(t, err)
	require.Equal(t, "user-777", points.UserID)
	require.Zero(t, points.Available)
	require.Empty(t, points.History)
	require.Len(t, repo.points, before)
}

func Test_wait_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryRewardRepository(DefaultSeed(), time.Second)

	_, err := repo.ListRewards(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
