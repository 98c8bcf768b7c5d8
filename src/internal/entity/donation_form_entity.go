package entity

import (
	"math"
	"strconv"
	"strings"
	"time"

	"donation-service/src/pkg/validation"
)

const (
	StepAmount   = 1
	StepPersonal = 2
	StepPayment  = 3
)

var PresetAmounts = []float64{10, 25, 50, 100}

// DonationForm is the three step donation wizard: amount, personal data
// and payment method. Only forward/back transitions exist and each forward
// move is gated by the current step's validation.
type DonationForm struct {
	ID             string            `json:"id"`
	Type           DonationType      `json:"type"`
	EmergencyID    string            `json:"emergencyId,omitempty"`
	Step           int               `json:"step"`
	SelectedAmount *float64          `json:"selectedAmount"`
	CustomAmount   string            `json:"customAmount"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	PaymentMethod  PaymentMethod     `json:"paymentMethod,omitempty"`
	AcceptTerms    bool              `json:"acceptTerms"`
	Errors         map[string]string `json:"errors,omitempty"`
	Submitted      bool              `json:"submitted"`
	DonationID     string            `json:"donationId,omitempty"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func NewDonationForm(id string, donationType DonationType) *DonationForm {
	if donationType != DonationRecurring {
		donationType = DonationSingle
	}
	return &DonationForm{
		ID:   id,
		Type: donationType,
		Step: StepAmount,
	}
}

// Prefill applies the amount query parameter: preset values select the
// preset, anything else positive goes into the custom field.
func (f *DonationForm) Prefill(amount float64) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return
	}
	for _, p := range PresetAmounts {
		if p == amount {
			f.SelectAmount(amount)
			return
		}
	}
	f.SetCustomAmount(strconv.FormatFloat(amount, 'f', -1, 64))
}

// SelectAmount picks a preset and clears the custom field.
func (f *DonationForm) SelectAmount(amount float64) {
	f.SelectedAmount = &amount
	f.CustomAmount = ""
	f.clearError("amount")
}

// SetCustomAmount fills the custom field and drops the preset.
func (f *DonationForm) SetCustomAmount(value string) {
	f.CustomAmount = value
	f.SelectedAmount = nil
	f.clearError("amount")
}

// FinalAmount is the selected preset, else the parsed custom amount, else 0.
func (f *DonationForm) FinalAmount() float64 {
	if f.SelectedAmount != nil {
		return *f.SelectedAmount
	}
	return ParseAmount(f.CustomAmount)
}

// ParseAmount accepts both "12.5" and "12,5"; unparsable input is 0.
func ParseAmount(value string) float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	if value == "" {
		return 0
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (f *DonationForm) ValidateStep(step int) map[string]string {
	errs := map[string]string{}
	switch step {
	case StepAmount:
		if f.FinalAmount() <= 0 {
			errs["amount"] = "Selecciona o ingresa un monto válido"
		}
	case StepPersonal:
		if strings.TrimSpace(f.Name) == "" {
			errs["name"] = "El nombre es obligatorio"
		}
		email := strings.TrimSpace(f.Email)
		if email == "" {
			errs["email"] = "El email es obligatorio"
		} else if !validation.EmailPattern.MatchString(email) {
			errs["email"] = "Ingresa un email válido"
		}
		if phone := strings.TrimSpace(f.Phone); phone != "" && !validation.PhonePattern.MatchString(phone) {
			errs["phone"] = "Ingresa un teléfono válido"
		}
	case StepPayment:
		if !f.PaymentMethod.Valid() {
			errs["paymentMethod"] = "Selecciona un método de pago"
		}
		if !f.AcceptTerms {
			errs["acceptTerms"] = "Debes aceptar los términos y condiciones"
		}
	}
	return errs
}

// Next advances one step when the current step validates.
func (f *DonationForm) Next() bool {
	errs := f.ValidateStep(f.Step)
	f.Errors = errs
	if len(errs) > 0 {
		return false
	}
	if f.Step < StepPayment {
		f.Step++
	}
	return true
}

func (f *DonationForm) Back() {
	if f.Step > StepAmount {
		f.Step--
	}
	f.Errors = nil
}

// Validate checks every step. On failure the form moves to the earliest
// failing step so its field errors can be shown; entered data is kept.
func (f *DonationForm) Validate() bool {
	for step := StepAmount; step <= StepPayment; step++ {
		if errs := f.ValidateStep(step); len(errs) > 0 {
			f.Errors = errs
			if step < f.Step {
				f.Step = step
			}
			return false
		}
	}
	f.Errors = nil
	return true
}

func (f *DonationForm) MarkSubmitted(donationID string) {
	f.Submitted = true
	f.DonationID = donationID
	f.Errors = nil
}

// Reset returns to a blank step one, keeping the form identity and campaign.
func (f *DonationForm) Reset() {
	*f = DonationForm{
		ID:          f.ID,
		Type:        f.Type,
		EmergencyID: f.EmergencyID,
		Step:        StepAmount,
	}
}

func (f *DonationForm) clearError(field string) {
	if f.Errors != nil {
		delete(f.Errors, field)
	}
}
