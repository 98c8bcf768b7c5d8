package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_DonationForm_AmountExclusive(t *testing.T) {
	form := NewDonationForm("f", DonationSingle)

	form.SelectAmount(50)
	require.Equal(t, 50.0, form.FinalAmount())
	require.Empty(t, form.CustomAmount)

	form.SetCustomAmount("75,5")
	require.Nil(t, form.SelectedAmount)
	require.Equal(t, 75.5, form.FinalAmount())

	form.SelectAmount(10)
	require.Empty(t, form.CustomAmount)
	require.Equal(t, 10.0, form.FinalAmount())
}

func Test_DonationForm_StepGating(t *testing.T) {
	form := NewDonationForm("f", "")
	require.Equal(t, DonationSingle, form.Type)
	require.Equal(t, StepAmount, form.Step)

	require.False(t, form.Next())
	require.Contains(t, form.Errors, "amount")
	require.Equal(t, StepAmount, form.Step)

	form.SelectAmount(25)
	require.NotContains(t, form.Errors, "amount")
	require.True(t, form.Next())
	require.Equal(t, StepPersonal, form.Step)

	form.Email = "no-es-un-email"
	form.Phone = "abc"
	require.False(t, form.Next())
	require.Equal(t, "El nombre es obligatorio", form.Errors["name"])
	require.Equal(t, "Ingresa un email válido", form.Errors["email"])
	require.Contains(t, form.Errors, "phone")

	form.Name = "Sofía Ramírez"
	form.Email = "sofia@example.com"
	form.Phone = ""
	require.True(t, form.Next())
	require.Equal(t, StepPayment, form.Step)

	require.False(t, form.Next())
	require.Contains(t, form.Errors, "paymentMethod")
	require.Contains(t, form.Errors, "acceptTerms")

	form.PaymentMethod = PaymentTransfer
	form.AcceptTerms = true
	require.True(t, form.Next())
	require.Equal(t, StepPayment, form.Step)

	form.Back()
	form.Back()
	form.Back()
	require.Equal(t, StepAmount, form.Step)
	require.Nil(t, form.Errors)
}

func Test_DonationForm_ValidateJumpsToFailingStep(t *testing.T) {
	form := NewDonationForm("f", DonationSingle)
	form.SelectAmount(100)
	form.Name = "Juan"
	form.Email = "juan@example.com"
	form.PaymentMethod = PaymentCard
	form.AcceptTerms = true
	form.Step = StepPayment
	require.True(t, form.Validate())

	form.Email = ""
	require.False(t, form.Validate())
	require.Equal(t, StepPersonal, form.Step)
	require.Contains(t, form.Errors, "email")
	require.Equal(t, "Juan", form.Name)
}

func Test_DonationForm_Reset(t *testing.T) {
	form := NewDonationForm("f", DonationRecurring)
	form.EmergencyID = "em-001"
	form.SelectAmount(25)
	form.Name = "Ana"
	form.Step = StepPayment
	form.MarkSubmitted("don-1")

	form.Reset()
	require.Equal(t, "f", form.ID)
	require.Equal(t, DonationRecurring, form.Type)
	require.Equal(t, "em-001", form.EmergencyID)
	require.Equal(t, StepAmount, form.Step)
	require.False(t, form.Submitted)
	require.Empty(t, form.Name)
	require.Zero(t, form.FinalAmount())
}

func Test_DonationForm_Prefill(t *testing.T) {
	preset := NewDonationForm("f", DonationSingle)
	preset.Prefill(50)
	require.NotNil(t, preset.SelectedAmount)
	require.Equal(t, 50.0, *preset.SelectedAmount)

	custom := NewDonationForm("f", DonationSingle)
	custom.Prefill(33.5)
	require.Nil(t, custom.SelectedAmount)
	require.Equal(t, "33.5", custom.CustomAmount)

	ignored := NewDonationForm("f", DonationSingle)
	ignored.Prefill(-4)
	require.Nil(t, ignored.SelectedAmount)
	require.Empty(t, ignored.CustomAmount)
}

func Test_ParseAmount(t *testing.T) {
	cases := map[string]float64{
		"":      0,
		"  ":    0,
		"12.5":  12.5,
		"12,5":  12.5,
		" 40 ":  40,
		"abc":   0,
		"12abc": 0,
		"NaN":   0,
		"-3":    -3,
		"1e400": 0,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseAmount(in), in)
	}
}
