package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DonationImpact(t *testing.T) {
	amount := func(v float64) *float64 { return &v }

	require.Equal(t, impactPrompt, DonationImpact(nil))
	require.Equal(t, impactPrompt, DonationImpact(amount(0)))
	require.Equal(t, impactPrompt, DonationImpact(amount(-5)))
	require.Equal(t, impactPrompt, DonationImpact(amount(math.NaN())))
	require.Equal(t, impactPrompt, DonationImpact(amount(math.Inf(1))))

	require.Equal(t, "Tu donación ayuda a mantener nuestras operaciones diarias", DonationImpact(amount(5)))
	require.Equal(t, "Tu donación puede alimentar a 5 familias por un día", DonationImpact(amount(10)))
	require.Equal(t, "Tu donación puede alimentar a 12 familias por un día", DonationImpact(amount(25)))
	require.Equal(t, "Tu donación permite rescatar 100 kg de alimentos", DonationImpact(amount(50)))
	require.Equal(t, "Tu donación permite rescatar 199 kg de alimentos", DonationImpact(amount(99.9)))
	require.Equal(t, "Tu donación puede alimentar a 20 familias durante una semana", DonationImpact(amount(100)))

	huge := DonationImpact(amount(1e20))
	require.Equal(t, "Tu donación puede alimentar a 20000000000000000000 familias durante una semana", huge)
}
