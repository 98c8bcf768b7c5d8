package http

import (
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) Checkout(ctx *fiber.Ctx) error {
	request := new(model.CheckoutRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Checkout", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.Checkout(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Checkout", fiber.StatusOK, ctx)
}

func (c *PaymentController) Reload(ctx *fiber.Ctx) error {
	request := new(model.CheckoutRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("PaymentController.Reload", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.Reload(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Checkout Reloaded", fiber.StatusOK, ctx)
}
