package usecase

import (
	"fmt"
	"math"
)

const impactPrompt = "Selecciona un monto para ver el impacto de tu donación"

// DonationImpact renders the impact message for an amount. A nil,
// non-positive or non-finite amount returns the selection prompt. Counts are
// formatted from the floored float so huge amounts cannot overflow an int.
func DonationImpact(amount *float64) string {
	if amount == nil || *amount <= 0 || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return impactPrompt
	}
	a := *amount
	switch {
	case a < 10:
		return "Tu donación ayuda a mantener nuestras operaciones diarias"
	case a < 50:
		return fmt.Sprintf("Tu donación puede alimentar a %.0f familias por un día", math.Floor(a*0.5))
	case a < 100:
		return fmt.Sprintf("Tu donación permite rescatar %.0f kg de alimentos", math.Floor(a*2))
	default:
		return fmt.Sprintf("Tu donación puede alimentar a %.0f familias durante una semana", math.Floor(a*0.2))
	}
}
