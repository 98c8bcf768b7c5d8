package usecase

import (
	"donation-service/src/internal/model"
	"donation-service/src/pkg/utils"
)

// SiteUseCase serves the header and footer chrome shared by every page.
type SiteUseCase struct {
	Organization string
	ContactEmail string
}

func NewSiteUseCase(organization, contactEmail string) *SiteUseCase {
	if organization == "" {
		organization = "Banco de Alimentos"
	}
	return &SiteUseCase{Organization: organization, ContactEmail: contactEmail}
}

func (c *SiteUseCase) Site() utils.Result {
	return utils.Result{Data: model.SiteResponse{
		Organization: c.Organization,
		Navigation: map[string]string{
			"inicio":           "/",
			"donaciones":       "/donaciones",
			"donacionUnica":    "/donaciones/unica",
			"donacionMensual":  "/donaciones/recurrente",
			"emergencias":      "/emergencias",
			"recompensas":      "/rewards",
			"historial":        "/rewards/history",
			"adminDashboard":   "/admin/dashboard",
			"adminRecompensas": "/admin/rewards",
			"adminAsignar":     "/admin/assign",
		},
		Footer: map[string]string{
			"organization": c.Organization,
			"contact":      c.ContactEmail,
		},
	}}
}
