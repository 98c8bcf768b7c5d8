package http

import (
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Log     log.Log
	UseCase *usecase.AdminUseCase
}

func NewAdminController(useCase *usecase.AdminUseCase, logger log.Log) *AdminController {
	return &AdminController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AdminController) Dashboard(ctx *fiber.Ctx) error {
	result := c.UseCase.Dashboard(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Dashboard", fiber.StatusOK, ctx)
}

func (c *AdminController) Users(ctx *fiber.Ctx) error {
	result := c.UseCase.Users(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Users", fiber.StatusOK, ctx)
}

func (c *AdminController) UserDetail(ctx *fiber.Ctx) error {
	request := new(model.UserDetailRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("AdminController.UserDetail", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	request.ID = ctx.Params("id")
	result := c.UseCase.UserDetail(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Detail", fiber.StatusOK, ctx)
}

func (c *AdminController) UserPoints(ctx *fiber.Ctx) error {
	result := c.UseCase.UserPoints(ctx.Context(), ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Points", fiber.StatusOK, ctx)
}

func (c *AdminController) ListRewards(ctx *fiber.Ctx) error {
	result := c.UseCase.ListRewards(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Rewards", fiber.StatusOK, ctx)
}

func (c *AdminController) CreateReward(ctx *fiber.Ctx) error {
	request := new(model.UpsertRewardRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.CreateReward", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.CreateReward(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reward Created", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateReward(ctx *fiber.Ctx) error {
	request := new(model.UpsertRewardRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateReward", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	request.ID = ctx.Params("id")
	result := c.UseCase.UpdateReward(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reward Updated", fiber.StatusOK, ctx)
}

func (c *AdminController) DeleteReward(ctx *fiber.Ctx) error {
	request := &model.GetRewardRequest{
		ID: ctx.Params("id"),
	}
	result := c.UseCase.DeleteReward(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reward Deleted", fiber.StatusOK, ctx)
}

func (c *AdminController) ListUserRewards(ctx *fiber.Ctx) error {
	result := c.UseCase.ListUserRewards(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Rewards", fiber.StatusOK, ctx)
}

func (c *AdminController) Assign(ctx *fiber.Ctx) error {
	request := new(model.AssignRewardRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.Assign", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.Assign(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reward Assigned", fiber.StatusCreated, ctx)
}

func (c *AdminController) UpdateUserRewardStatus(ctx *fiber.Ctx) error {
	request := new(model.UpdateUserRewardStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AdminController.UpdateUserRewardStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	request.ID = ctx.Params("id")
	result := c.UseCase.UpdateUserRewardStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "User Reward Updated", fiber.StatusOK, ctx)
}
