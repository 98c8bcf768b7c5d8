package http

import (
	"donation-service/src/internal/usecase"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SiteController struct {
	UseCase *usecase.SiteUseCase
}

func NewSiteController(useCase *usecase.SiteUseCase) *SiteController {
	return &SiteController{UseCase: useCase}
}

func (c *SiteController) Site(ctx *fiber.Ctx) error {
	result := c.UseCase.Site()
	return utils.Response(result.Data, "Site", fiber.StatusOK, ctx)
}
