package repository

import (
	"context"
	"sync"
	"time"

	"donation-service/src/internal/entity"

	"github.com/google/uuid"
)

// MemoryRewardRepository keeps the rewards catalogue and point balances in
// process. A single mutex serializes every mutation, which is what keeps two
// concurrent redemptions from spending the same points.
type MemoryRewardRepository struct {
	mu           sync.Mutex
	latency      time.Duration
	rewards      []entity.Reward
	userRewards  []entity.UserReward
	points       map[string]*entity.UserPoints
	participants []entity.LeaderboardParticipant
}

func NewMemoryRewardRepository(seed Seed, latency time.Duration) *MemoryRewardRepository {
	points := make(map[string]*entity.UserPoints, len(seed.Points))
	for i := range seed.Points {
		p := copyPoints(seed.Points[i])
		points[p.UserID] = &p
	}
	return &MemoryRewardRepository{
		latency:      latency,
		rewards:      seed.Rewards,
		userRewards:  seed.UserRewards,
		points:       points,
		participants: seed.Participants,
	}
}

func (r *MemoryRewardRepository) ListRewards(ctx context.Context) ([]entity.Reward, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.Reward, 0, len(r.rewards))
	for _, rw := range r.rewards {
		out = append(out, copyReward(rw))
	}
	return out, nil
}

func (r *MemoryRewardRepository) FindReward(ctx context.Context, id string) (*entity.Reward, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.rewardIndex(id); i >= 0 {
		rw := copyReward(r.rewards[i])
		return &rw, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryRewardRepository) CreateReward(ctx context.Context, reward *entity.Reward) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rewards = append(r.rewards, copyReward(*reward))
	return nil
}

func (r *MemoryRewardRepository) UpdateReward(ctx context.Context, reward *entity.Reward) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.rewardIndex(reward.ID)
	if i < 0 {
		return ErrNotFound
	}
	r.rewards[i] = copyReward(*reward)
	return nil
}

func (r *MemoryRewardRepository) DeleteReward(ctx context.Context, id string) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.rewardIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	for _, ur := range r.userRewards {
		if ur.RewardID == id {
			return ErrRewardAssigned
		}
	}
	r.rewards = append(r.rewards[:i:i], r.rewards[i+1:]...)
	return nil
}

func (r *MemoryRewardRepository) GetPoints(ctx context.Context, userID string) (*entity.UserPoints, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.points[userID]
	if !ok {
		return &entity.UserPoints{UserID: userID, History: []entity.PointTransaction{}}, nil
	}
	p := copyPoints(*stored)
	return &p, nil
}

func (r *MemoryRewardRepository) Redeem(ctx context.Context, userID, rewardID string, at time.Time) (*entity.UserReward, *entity.UserPoints, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.rewardIndex(rewardID)
	if i < 0 {
		return nil, nil, ErrNotFound
	}
	reward := &r.rewards[i]
	if !reward.Active {
		return nil, nil, ErrRewardInactive
	}
	if reward.AvailableQuantity != nil && *reward.AvailableQuantity <= 0 {
		return nil, nil, ErrRewardSoldOut
	}
	points := r.pointsOf(userID)
	if points.Available < reward.PointsRequired {
		return nil, nil, ErrInsufficientPoints
	}

	code, err := uniqueCode(r.codeTaken)
	if err != nil {
		return nil, nil, err
	}

	points.Available -= reward.PointsRequired
	points.Spent += reward.PointsRequired
	points.History = append([]entity.PointTransaction{{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        at,
		Amount:      reward.PointsRequired,
		Type:        entity.TransactionSpent,
		Description: "Canje: " + reward.Title,
	}}, points.History...)

	if reward.AvailableQuantity != nil {
		q := *reward.AvailableQuantity - 1
		reward.AvailableQuantity = &q
	}

	ur := entity.UserReward{
		ID:         "ur-" + uuid.NewString(),
		UserID:     userID,
		RewardID:   reward.ID,
		Reward:     copyReward(*reward),
		AssignedAt: at,
		Status:     entity.StatusAssigned,
		Code:       code,
	}
	r.userRewards = append(r.userRewards, ur)

	out := copyUserReward(ur)
	p := copyPoints(*points)
	return &out, &p, nil
}

// AssignReward is the admin path: no balance check and no point movement.
func (r *MemoryRewardRepository) AssignReward(ctx context.Context, userReward *entity.UserReward) error {
	if err := wait(ctx, r.latency); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.rewardIndex(userReward.RewardID)
	if i < 0 {
		return ErrNotFound
	}
	code, err := uniqueCode(r.codeTaken)
	if err != nil {
		return err
	}
	if userReward.ID == "" {
		userReward.ID = "ur-" + uuid.NewString()
	}
	if userReward.Status == "" {
		userReward.Status = entity.StatusAssigned
	}
	userReward.Code = code
	userReward.Reward = copyReward(r.rewards[i])
	r.userRewards = append(r.userRewards, copyUserReward(*userReward))
	return nil
}

// ListUserRewards returns every assignment when userID is empty.
func (r *MemoryRewardRepository) ListUserRewards(ctx context.Context, userID string) ([]entity.UserReward, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []entity.UserReward{}
	for _, ur := range r.userRewards {
		if userID == "" || ur.UserID == userID {
			out = append(out, copyUserReward(ur))
		}
	}
	return out, nil
}

func (r *MemoryRewardRepository) UpdateUserRewardStatus(ctx context.Context, id string, status entity.UserRewardStatus) (*entity.UserReward, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.userRewards {
		if r.userRewards[i].ID == id {
			r.userRewards[i].Status = status
			out := copyUserReward(r.userRewards[i])
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRewardRepository) ListParticipants(ctx context.Context) ([]entity.LeaderboardParticipant, error) {
	if err := wait(ctx, r.latency); err != nil {
		return nil, err
	}
	return append([]entity.LeaderboardParticipant(nil), r.participants...), nil
}

func (r *MemoryRewardRepository) rewardIndex(id string) int {
	for i := range r.rewards {
		if r.rewards[i].ID == id {
			return i
		}
	}
	return -1
}

// pointsOf creates the balance on first use and must be called with mu held.
func (r *MemoryRewardRepository) pointsOf(userID string) *entity.UserPoints {
	p, ok := r.points[userID]
	if !ok {
		p = &entity.UserPoints{UserID: userID, History: []entity.PointTransaction{}}
		r.points[userID] = p
	}
	return p
}

func (r *MemoryRewardRepository) codeTaken(code string) (bool, error) {
	for _, ur := range r.userRewards {
		if ur.Code == code {
			return true, nil
		}
	}
	return false, nil
}
