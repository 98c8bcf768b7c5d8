package http

import (
	"donation-service/src/internal/model"
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	Log     log.Log
	UseCase *usecase.SearchUseCase
}

func NewSearchController(useCase *usecase.SearchUseCase, logger log.Log) *SearchController {
	return &SearchController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SearchController) Search(ctx *fiber.Ctx) error {
	request := new(model.SearchRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("SearchController.Search", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(parseError(err), ctx)
	}
	result := c.UseCase.Search(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Search", fiber.StatusOK, ctx)
}
