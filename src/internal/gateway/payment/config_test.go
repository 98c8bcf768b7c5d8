package payment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		RemittanceEmail: "donaciones@bancodealimentos.org",
		PayerEmail:      "ana@example.com",
		PayerName:       "Ana",
		TaxExemptAmount: 50,
		Description:     "Donación don-1",
		Environment:     Sandbox,
	}
}

func Test_Config_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := map[string]func(c *Config){
		"production flag in sandbox": func(c *Config) { c.Production = true },
		"production without flag":    func(c *Config) { c.Environment = Production },
		"unknown environment":        func(c *Config) { c.Environment = "staging" },
		"missing remittance email":   func(c *Config) { c.RemittanceEmail = " " },
		"zero amount":                func(c *Config) { c.TaxExemptAmount = 0 },
		"negative taxed amount":      func(c *Config) { c.TaxedAmount = -1 },
		"recurring without plan":     func(c *Config) { c.Recurring = true },
	}
	for name, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
	}

	prod := validConfig()
	prod.Environment = Production
	prod.Production = true
	require.NoError(t, prod.Validate())
}

func Test_Config_Params(t *testing.T) {
	params := validConfig().Params()
	require.Equal(t, "50.00", params["amount_tax_exempt"])
	require.Equal(t, "0.00", params["amount_taxed"])
	require.Equal(t, "es", params["lang"])
	require.Equal(t, "sandbox", params["environment"])
	require.NotContains(t, params, "plan_id")

	recurring := validConfig()
	recurring.Recurring = true
	recurring.PlanID = "plan-mensual"
	recurring.Language = "en"
	recurring.Schedule.AllowPlanChange = true
	params = recurring.Params()
	require.Equal(t, "plan-mensual", params["plan_id"])
	require.Equal(t, true, params["allow_plan_change"])
	require.Equal(t, false, params["charge_on_subscription"])
	require.Equal(t, "en", params["lang"])
}
