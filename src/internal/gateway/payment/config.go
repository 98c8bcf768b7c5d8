package payment

import (
	"errors"
	"fmt"
	"strings"
)

type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

var ErrInvalidConfig = errors.New("invalid payment configuration")

// Schedule holds the recurring-only flags of the widget.
type Schedule struct {
	ChargeOnSubscription bool
	AllowPlanChange      bool
}

// Config is the parameter set handed to the provider's init and reload.
type Config struct {
	RemittanceEmail string
	PayerEmail      string
	PayerName       string
	TaxExemptAmount float64
	TaxedAmount     float64
	Description     string
	Production      bool
	Environment     Environment
	Language        string
	Recurring       bool
	PlanID          string
	Schedule        Schedule
}

// Validate rejects a production flag that disagrees with the environment
// string, as well as incomplete recurring setups.
func (c Config) Validate() error {
	switch c.Environment {
	case Sandbox:
		if c.Production {
			return fmt.Errorf("%w: production flag set for sandbox environment", ErrInvalidConfig)
		}
	case Production:
		if !c.Production {
			return fmt.Errorf("%w: production environment without production flag", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}
	if strings.TrimSpace(c.RemittanceEmail) == "" {
		return fmt.Errorf("%w: remittance email is required", ErrInvalidConfig)
	}
	if c.TaxExemptAmount < 0 || c.TaxedAmount < 0 || c.TaxExemptAmount+c.TaxedAmount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidConfig)
	}
	if c.Recurring && strings.TrimSpace(c.PlanID) == "" {
		return fmt.Errorf("%w: recurring payments need a plan id", ErrInvalidConfig)
	}
	return nil
}

func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Params renders the config with the provider's field names.
func (c Config) Params() map[string]interface{} {
	lang := c.Language
	if lang == "" {
		lang = "es"
	}
	params := map[string]interface{}{
		"remittance_email":  c.RemittanceEmail,
		"payer_email":       c.PayerEmail,
		"payer_name":        c.PayerName,
		"amount_tax_exempt": FormatAmount(c.TaxExemptAmount),
		"amount_taxed":      FormatAmount(c.TaxedAmount),
		"description":       c.Description,
		"production":        c.Production,
		"environment":       string(c.Environment),
		"lang":              lang,
		"recurring":         c.Recurring,
	}
	if c.Recurring {
		params["plan_id"] = c.PlanID
		params["charge_on_subscription"] = c.Schedule.ChargeOnSubscription
		params["allow_plan_change"] = c.Schedule.AllowPlanChange
	}
	return params
}
