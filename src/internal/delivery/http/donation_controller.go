package http

import (
	"donation-service/src/internal/delivery/http/middleware"
	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type DonationController struct {
	Log     log.Log
	UseCase *usecase.DonationUseCase
}

func NewDonationController(useCase *usecase.DonationUseCase, logger log.Log) *DonationController {
	return &DonationController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *DonationController) Options(ctx *fiber.Ctx) error {
	result := c.UseCase.Options()
	return utils.Response(result.Data, "Donation Options", fiber.StatusOK, ctx)
}

func (c *DonationController) Impact(ctx *fiber.Ctx) error {
	request := new(model.DonationImpactRequest)
	if raw := ctx.Query("amount"); raw != "" {
		amount := entity.ParseAmount(raw)
		request.Amount = &amount
	}
	result := c.UseCase.Impact(request)
	return utils.Response(result.Data, "Donation Impact", fiber.StatusOK, ctx)
}

func (c *DonationController) Submit(ctx *fiber.Ctx) error {
	request := new(model.SubmitDonationRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("DonationController.Submit", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	request.UserID = middleware.GetUser(ctx).UserID
	result := c.UseCase.Submit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Created", fiber.StatusCreated, ctx)
}
