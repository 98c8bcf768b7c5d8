package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/model"
	"donation-service/src/internal/model/converter"
	"donation-service/src/internal/repository"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const (
	anonymousDonor   = "Donante anónimo"
	currentUserLabel = "Tú"
)

type RewardUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	RewardRepository repository.RewardRepository
	RewardProducer   *messaging.RewardProducer
	Now              func() time.Time
}

func NewRewardUseCase(
	logger log.Log,
	validate *validator.Validate,
	rewardRepository repository.RewardRepository,
	rewardProducer *messaging.RewardProducer,
) *RewardUseCase {
	return &RewardUseCase{
		Log:              logger,
		Validate:         validate,
		RewardRepository: rewardRepository,
		RewardProducer:   rewardProducer,
		Now:              time.Now,
	}
}

// ListAvailable returns active rewards only.
func (c *RewardUseCase) ListAvailable(ctx context.Context) utils.Result {
	var result utils.Result

	rewards, err := c.available(ctx)
	if err != nil {
		c.Log.Error("reward-usecase", err.Error(), "ListAvailable", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = rewards
	return result
}

func (c *RewardUseCase) Get(ctx context.Context, request *model.GetRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("GetReward-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	reward, err := c.RewardRepository.FindReward(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetReward-FindReward", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "Recompensa no encontrada", "/rewards")
		return result
	}
	result.Data = reward
	return result
}

func (c *RewardUseCase) Points(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	points, err := c.RewardRepository.GetPoints(ctx, userID)
	if err != nil {
		c.Log.Error("reward-usecase", err.Error(), "Points", userID)
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = points
	return result
}

func (c *RewardUseCase) Leaderboard(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	participants, err := c.RewardRepository.ListParticipants(ctx)
	if err != nil {
		c.Log.Error("reward-usecase", err.Error(), "Leaderboard", userID)
		result.Error = storeError(err, "", "")
		return result
	}
	points, err := c.RewardRepository.GetPoints(ctx, userID)
	if err != nil {
		c.Log.Error("reward-usecase", err.Error(), "Leaderboard", userID)
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = BuildLeaderboard(participants, userID, points.Total)
	return result
}

// Overview loads the rewards page in one call: catalogue, balance and
// ranking are fetched concurrently and the first failure cancels the rest.
func (c *RewardUseCase) Overview(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	var (
		rewards      []entity.Reward
		points       *entity.UserPoints
		participants []entity.LeaderboardParticipant
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rewards, err = c.available(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		points, err = c.RewardRepository.GetPoints(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		participants, err = c.RewardRepository.ListParticipants(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.Log.Error("reward-usecase", err.Error(), "Overview", userID)
		result.Error = storeError(err, "", "")
		return result
	}

	result.Data = model.RewardsOverviewResponse{
		Rewards:     rewards,
		Points:      *points,
		Leaderboard: BuildLeaderboard(participants, userID, points.Total),
	}
	return result
}

func (c *RewardUseCase) Redeem(ctx context.Context, request *model.RedeemRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Redeem-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	userReward, points, err := c.RewardRepository.Redeem(ctx, request.UserID, request.RewardID, c.Now().UTC())
	if err != nil {
		c.Log.Error("reward-usecase", err.Error(), "Redeem", utils.ConvertString(request))
		result.Error = storeError(err, "Recompensa no encontrada", "/rewards")
		return result
	}
	c.Log.Info("reward-usecase", "reward redeemed", "Redeem", userReward.ID)

	if c.RewardProducer != nil {
		if errSend := c.RewardProducer.SendRedeemed(converter.UserRewardToEvent(userReward, userReward.Reward.PointsRequired)); errSend != nil {
			c.Log.Error("reward-usecase", errSend.Error(), "SendRedeemed", userReward.ID)
		}
	}

	result.Data = model.RedeemRewardResponse{
		Message:    fmt.Sprintf("¡Canjeaste %s con éxito!", userReward.Reward.Title),
		UserReward: *userReward,
		Points:     *points,
	}
	return result
}

func (c *RewardUseCase) History(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	var (
		userRewards []entity.UserReward
		points      *entity.UserPoints
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		userRewards, err = c.RewardRepository.ListUserRewards(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		points, err = c.RewardRepository.GetPoints(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		c.Log.Error("reward-usecase", err.Error(), "History", userID)
		result.Error = storeError(err, "", "")
		return result
	}

	result.Data = model.RewardHistoryResponse{
		Rewards:      userRewards,
		Transactions: points.History,
	}
	return result
}

func (c *RewardUseCase) available(ctx context.Context) ([]entity.Reward, error) {
	rewards, err := c.RewardRepository.ListRewards(ctx)
	if err != nil {
		return nil, err
	}
	active := []entity.Reward{}
	for _, r := range rewards {
		if r.Active {
			active = append(active, r)
		}
	}
	return active, nil
}

// BuildLeaderboard ranks the participants together with the current user,
// highest points first. Anonymous participants are shown under a generic
// name; the current user is never anonymized.
func BuildLeaderboard(participants []entity.LeaderboardParticipant, currentUserID string, currentPoints int) []entity.LeaderboardEntry {
	entries := make([]entity.LeaderboardEntry, 0, len(participants)+1)
	found := false
	for _, p := range participants {
		entry := entity.LeaderboardEntry{
			UserID:      p.UserID,
			DisplayName: p.Name,
			Points:      p.Points,
			Anonymous:   p.Anonymous,
		}
		if p.UserID == currentUserID {
			found = true
			entry.IsCurrentUser = true
			entry.Anonymous = false
			if currentPoints > entry.Points {
				entry.Points = currentPoints
			}
		}
		if entry.Anonymous {
			entry.DisplayName = anonymousDonor
		}
		entries = append(entries, entry)
	}
	if !found && currentUserID != "" {
		entries = append(entries, entity.LeaderboardEntry{
			UserID:        currentUserID,
			DisplayName:   currentUserLabel,
			Points:        currentPoints,
			IsCurrentUser: true,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
