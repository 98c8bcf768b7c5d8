package http

import (
	"donation-service/src/internal/delivery/http/middleware"
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// FormController exposes the donation wizard stored server side.
type FormController struct {
	Log     log.Log
	UseCase *usecase.DonationUseCase
}

func NewFormController(useCase *usecase.DonationUseCase, logger log.Log) *FormController {
	return &FormController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *FormController) Create(ctx *fiber.Ctx) error {
	request := new(model.CreateFormRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("FormController.Create", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.CreateForm(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Form Created", fiber.StatusCreated, ctx)
}

func (c *FormController) Get(ctx *fiber.Ctx) error {
	result := c.UseCase.GetForm(ctx.Context(), c.action(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Form", fiber.StatusOK, ctx)
}

func (c *FormController) Update(ctx *fiber.Ctx) error {
	request := new(model.UpdateFormRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("FormController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	request.FormID = ctx.Params("id")
	result := c.UseCase.UpdateForm(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Form Updated", fiber.StatusOK, ctx)
}

func (c *FormController) Next(ctx *fiber.Ctx) error {
	result := c.UseCase.Next(ctx.Context(), c.action(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Next Step", fiber.StatusOK, ctx)
}

func (c *FormController) Back(ctx *fiber.Ctx) error {
	result := c.UseCase.Back(ctx.Context(), c.action(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Previous Step", fiber.StatusOK, ctx)
}

func (c *FormController) Submit(ctx *fiber.Ctx) error {
	result := c.UseCase.SubmitForm(ctx.Context(), c.action(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Created", fiber.StatusCreated, ctx)
}

func (c *FormController) Reset(ctx *fiber.Ctx) error {
	result := c.UseCase.ResetForm(ctx.Context(), c.action(ctx))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Donation Form Reset", fiber.StatusOK, ctx)
}

func (c *FormController) action(ctx *fiber.Ctx) *model.FormActionRequest {
	return &model.FormActionRequest{
		FormID: ctx.Params("id"),
		UserID: middleware.GetUser(ctx).UserID,
	}
}
