package http

import (
	"donation-service/src/internal/delivery/http/middleware"
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type EmergencyController struct {
	Log     log.Log
	UseCase *usecase.EmergencyUseCase
}

func NewEmergencyController(useCase *usecase.EmergencyUseCase, logger log.Log) *EmergencyController {
	return &EmergencyController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *EmergencyController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Emergencies", fiber.StatusOK, ctx)
}

func (c *EmergencyController) Get(ctx *fiber.Ctx) error {
	request := &model.GetEmergencyRequest{
		ID: ctx.Params("id"),
	}
	result := c.UseCase.Get(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Emergency", fiber.StatusOK, ctx)
}

func (c *EmergencyController) Critical(ctx *fiber.Ctx) error {
	result := c.UseCase.Critical(ctx.Context())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Critical Emergencies", fiber.StatusOK, ctx)
}

func (c *EmergencyController) Banner(ctx *fiber.Ctx) error {
	request := &model.BannerRequest{
		SessionID: middleware.GetUser(ctx).SessionID,
	}
	result := c.UseCase.Banner(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Emergency Banner", fiber.StatusOK, ctx)
}

// DismissBanner takes the session from the body, falling back to the
// X-Session-ID header.
func (c *EmergencyController) DismissBanner(ctx *fiber.Ctx) error {
	request := new(model.BannerRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			c.Log.Error("EmergencyController.DismissBanner", "Failed to parse request body", "error", err.Error())
			return utils.ResponseError(parseError(err), ctx)
		}
	}
	if request.SessionID == "" {
		request.SessionID = middleware.GetUser(ctx).SessionID
	}
	result := c.UseCase.DismissBanner(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Emergency Banner Dismissed", fiber.StatusOK, ctx)
}
