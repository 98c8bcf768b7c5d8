package usecase

import (
	"context"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/model"
	"donation-service/src/internal/model/converter"
	"donation-service/src/internal/repository"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RewardIndexer keeps the search index in step with catalogue edits.
type RewardIndexer interface {
	IndexReward(reward entity.Reward) error
	RemoveReward(id string) error
}

type AdminUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	DonationRepository repository.DonationRepository
	RewardRepository   repository.RewardRepository
	RewardProducer     *messaging.RewardProducer
	Indexer            RewardIndexer
	Now                func() time.Time
}

func NewAdminUseCase(
	logger log.Log,
	validate *validator.Validate,
	donationRepository repository.DonationRepository,
	rewardRepository repository.RewardRepository,
	rewardProducer *messaging.RewardProducer,
	indexer RewardIndexer,
) *AdminUseCase {
	return &AdminUseCase{
		Log:                logger,
		Validate:           validate,
		DonationRepository: donationRepository,
		RewardRepository:   rewardRepository,
		RewardProducer:     rewardProducer,
		Indexer:            indexer,
		Now:                time.Now,
	}
}

func (c *AdminUseCase) Dashboard(ctx context.Context) utils.Result {
	var result utils.Result

	users, err := c.DonationRepository.ListUsers(ctx)
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "Dashboard", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = model.DashboardResponse{
		Stats: ComputeDashboardStats(users),
		Users: summaries(users),
	}
	return result
}

func (c *AdminUseCase) Users(ctx context.Context) utils.Result {
	var result utils.Result

	users, err := c.DonationRepository.ListUsers(ctx)
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "Users", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = summaries(users)
	return result
}

func (c *AdminUseCase) UserDetail(ctx context.Context, request *model.UserDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UserDetail-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	user, err := c.DonationRepository.FindUser(ctx, request.ID)
	if err != nil {
		c.Log.Error("UserDetail-FindUser", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "Usuario no encontrado", "/admin/dashboard")
		return result
	}

	field, order := ToggleSort(request.Sort, request.Order, request.Toggle)
	result.Data = model.UserDetailResponse{
		User:      *user,
		Sort:      field,
		Order:     order,
		Donations: SortDonations(user.Donations, field, order),
	}
	return result
}

func (c *AdminUseCase) ListRewards(ctx context.Context) utils.Result {
	var result utils.Result

	rewards, err := c.RewardRepository.ListRewards(ctx)
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "ListRewards", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = rewards
	return result
}

func (c *AdminUseCase) CreateReward(ctx context.Context, request *model.UpsertRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("CreateReward-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	reward := converter.UpsertRequestToReward(request)
	reward.ID = "rw-" + uuid.NewString()
	if err := c.RewardRepository.CreateReward(ctx, &reward); err != nil {
		c.Log.Error("admin-usecase", err.Error(), "CreateReward", utils.ConvertString(request))
		result.Error = storeError(err, "", "")
		return result
	}
	c.index(reward)
	c.Log.Info("admin-usecase", "reward created", "CreateReward", reward.ID)
	result.Data = reward
	return result
}

func (c *AdminUseCase) UpdateReward(ctx context.Context, request *model.UpsertRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UpdateReward-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	reward := converter.UpsertRequestToReward(request)
	if err := c.RewardRepository.UpdateReward(ctx, &reward); err != nil {
		c.Log.Error("admin-usecase", err.Error(), "UpdateReward", utils.ConvertString(request))
		result.Error = storeError(err, "Recompensa no encontrada", "/admin/rewards")
		return result
	}
	c.index(reward)
	result.Data = reward
	return result
}

// DeleteReward refuses rewards that any user already holds.
func (c *AdminUseCase) DeleteReward(ctx context.Context, request *model.GetRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	if err := c.RewardRepository.DeleteReward(ctx, request.ID); err != nil {
		c.Log.Error("admin-usecase", err.Error(), "DeleteReward", request.ID)
		result.Error = storeError(err, "Recompensa no encontrada", "/admin/rewards")
		return result
	}
	if c.Indexer != nil {
		if err := c.Indexer.RemoveReward(request.ID); err != nil {
			c.Log.Error("admin-usecase", err.Error(), "RemoveReward", request.ID)
		}
	}
	result.Data = map[string]string{"id": request.ID}
	return result
}

func (c *AdminUseCase) ListUserRewards(ctx context.Context) utils.Result {
	var result utils.Result

	userRewards, err := c.RewardRepository.ListUserRewards(ctx, "")
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "ListUserRewards", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = userRewards
	return result
}

// Assign gives a reward to a user without checking or moving points.
func (c *AdminUseCase) Assign(ctx context.Context, request *model.AssignRewardRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Assign-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if _, err := c.DonationRepository.FindUser(ctx, request.UserID); err != nil {
		c.Log.Error("Assign-FindUser", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "Usuario no encontrado", "/admin/assign")
		return result
	}

	userReward := entity.UserReward{
		UserID:     request.UserID,
		RewardID:   request.RewardID,
		AssignedAt: c.Now().UTC(),
		Status:     entity.StatusAssigned,
		Notes:      request.Notes,
	}
	if err := c.RewardRepository.AssignReward(ctx, &userReward); err != nil {
		c.Log.Error("admin-usecase", err.Error(), "AssignReward", utils.ConvertString(request))
		result.Error = storeError(err, "Recompensa no encontrada", "/admin/assign")
		return result
	}
	c.Log.Info("admin-usecase", "reward assigned", "Assign", userReward.ID)

	if c.RewardProducer != nil {
		if err := c.RewardProducer.SendAssigned(converter.UserRewardToEvent(&userReward, 0)); err != nil {
			c.Log.Error("admin-usecase", err.Error(), "SendAssigned", userReward.ID)
		}
	}
	result.Data = userReward
	return result
}

// UpdateUserRewardStatus accepts any transition.
func (c *AdminUseCase) UpdateUserRewardStatus(ctx context.Context, request *model.UpdateUserRewardStatusRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UpdateUserRewardStatus-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	userReward, err := c.RewardRepository.UpdateUserRewardStatus(ctx, request.ID, entity.UserRewardStatus(request.Status))
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "UpdateUserRewardStatus", utils.ConvertString(request))
		result.Error = storeError(err, "Asignación no encontrada", "/admin/assign")
		return result
	}

	if c.RewardProducer != nil {
		if errSend := c.RewardProducer.SendStatusChanged(converter.UserRewardToEvent(userReward, 0)); errSend != nil {
			c.Log.Error("admin-usecase", errSend.Error(), "SendStatusChanged", userReward.ID)
		}
	}
	result.Data = userReward
	return result
}

func (c *AdminUseCase) UserPoints(ctx context.Context, userID string) utils.Result {
	var result utils.Result

	points, err := c.RewardRepository.GetPoints(ctx, userID)
	if err != nil {
		c.Log.Error("admin-usecase", err.Error(), "UserPoints", userID)
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = points
	return result
}

func (c *AdminUseCase) index(reward entity.Reward) {
	if c.Indexer == nil {
		return
	}
	if err := c.Indexer.IndexReward(reward); err != nil {
		c.Log.Error("admin-usecase", err.Error(), "IndexReward", reward.ID)
	}
}

func summaries(users []entity.User) []model.UserSummary {
	out := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, converter.UserToSummary(u))
	}
	return out
}
