package route

import (
	"donation-service/src/internal/delivery/http"
	"donation-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                 *fiber.App
	DonationController  *http.DonationController
	FormController      *http.FormController
	EmergencyController *http.EmergencyController
	RewardController    *http.RewardController
	AdminController     *http.AdminController
	PaymentController   *http.PaymentController
	SearchController    *http.SearchController
	SiteController      *http.SiteController
	IdentityMiddleware  fiber.Handler
	AdminMiddleware     fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	api := c.App.Group("/api/v1", c.IdentityMiddleware)
	c.SetupPublicRoute(api)
	c.SetupAdminRoute(api)
}

func (c *RouteConfig) SetupPublicRoute(api fiber.Router) {
	api.Get("/site", c.SiteController.Site)
	api.Get("/search", c.SearchController.Search)

	api.Get("/donations/options", c.DonationController.Options)
	api.Get("/donations/impact", c.DonationController.Impact)
	api.Post("/donations", c.DonationController.Submit)

	api.Post("/donation-forms", c.FormController.Create)
	api.Get("/donation-forms/:id", c.FormController.Get)
	api.Patch("/donation-forms/:id", c.FormController.Update)
	api.Post("/donation-forms/:id/next", c.FormController.Next)
	api.Post("/donation-forms/:id/back", c.FormController.Back)
	api.Post("/donation-forms/:id/submit", c.FormController.Submit)
	api.Post("/donation-forms/:id/reset", c.FormController.Reset)

	// static paths first so they do not match :id
	api.Get("/emergencies", c.EmergencyController.List)
	api.Get("/emergencies/critical", c.EmergencyController.Critical)
	api.Get("/emergencies/banner", c.EmergencyController.Banner)
	api.Post("/emergencies/banner/dismiss", c.EmergencyController.DismissBanner)
	api.Get("/emergencies/:id", c.EmergencyController.Get)

	api.Get("/points", c.RewardController.Points)
	api.Get("/leaderboard", c.RewardController.Leaderboard)
	api.Get("/rewards", c.RewardController.List)
	api.Get("/rewards/overview", c.RewardController.Overview)
	api.Get("/rewards/history", c.RewardController.History)
	api.Get("/rewards/:id", c.RewardController.Get)
	api.Post("/rewards/:id/redeem", c.RewardController.Redeem)

	api.Post("/payments/checkout", c.PaymentController.Checkout)
	api.Post("/payments/reload", c.PaymentController.Reload)
}

func (c *RouteConfig) SetupAdminRoute(api fiber.Router) {
	admin := api.Group("/admin", c.AdminMiddleware)
	admin.Get("/dashboard", c.AdminController.Dashboard)
	admin.Get("/users", c.AdminController.Users)
	admin.Get("/users/:id", c.AdminController.UserDetail)
	admin.Get("/users/:id/points", c.AdminController.UserPoints)
	admin.Get("/rewards", c.AdminController.ListRewards)
	admin.Post("/rewards", c.AdminController.CreateReward)
	admin.Put("/rewards/:id", c.AdminController.UpdateReward)
	admin.Delete("/rewards/:id", c.AdminController.DeleteReward)
	admin.Get("/user-rewards", c.AdminController.ListUserRewards)
	admin.Patch("/user-rewards/:id/status", c.AdminController.UpdateUserRewardStatus)
	admin.Post("/assign", c.AdminController.Assign)
}
