package http

import (
	"donation-service/src/internal/delivery/http/middleware"
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RewardController struct {
	Log     log.Log
	UseCase *usecase.RewardUseCase
}

func NewRewardController(useCase *usecase.RewardUseCase, logger log.Log) *RewardController {
	return &RewardController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RewardController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.ListAvailable(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rewards", fiber.StatusOK, ctx)
}

func (c *RewardController) Get(ctx *fiber.Ctx) error {
	request := &model.GetRewardRequest{
		ID: ctx.Params("id"),
	}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reward", fiber.StatusOK, ctx)
}

func (c *RewardController) Points(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Points(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Points", fiber.StatusOK, ctx)
}

func (c *RewardController) Leaderboard(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Leaderboard(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Leaderboard", fiber.StatusOK, ctx)
}

func (c *RewardController) Overview(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Overview(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rewards Overview", fiber.StatusOK, ctx)
}

func (c *RewardController) Redeem(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.RedeemRewardRequest{
		UserID:   auth.UserID,
		RewardID: ctx.Params("id"),
	}
	result := c.UseCase.Redeem(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	response := result.Data.(model.RedeemRewardResponse)
	return utils.Response(response, response.Message, fiber.StatusOK, ctx)
}

func (c *RewardController) History(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.History(ctx.Context(), auth.UserID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rewards History", fiber.StatusOK, ctx)
}
