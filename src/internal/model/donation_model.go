package model

import "donation-service/src/internal/entity"

type DonationImpactRequest struct {
	Amount *float64 `query:"amount"`
}

type DonationImpactResponse struct {
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

type DonationOptionsResponse struct {
	PresetAmounts  []float64 `json:"presetAmounts"`
	PaymentMethods []string  `json:"paymentMethods"`
	Types          []string  `json:"types"`
}

// CreateFormRequest carries the query parameters donation pages accept.
type CreateFormRequest struct {
	Amount    float64 `query:"amount" validate:"gte=0"`
	Type      string  `query:"type" validate:"omitempty,oneof=single recurring"`
	Emergency string  `query:"emergency" validate:"max=64"`
}

// UpdateFormRequest is a partial update; nil fields are left untouched.
type UpdateFormRequest struct {
	FormID         string   `json:"-" validate:"required"`
	SelectedAmount *float64 `json:"selectedAmount" validate:"omitempty,gt=0"`
	CustomAmount   *string  `json:"customAmount" validate:"omitempty,max=20"`
	Name           *string  `json:"name" validate:"omitempty,max=120"`
	Email          *string  `json:"email" validate:"omitempty,max=254"`
	Phone          *string  `json:"phone" validate:"omitempty,max=20"`
	PaymentMethod  *string  `json:"paymentMethod" validate:"omitempty,oneof=card transfer cash"`
	AcceptTerms    *bool    `json:"acceptTerms"`
}

// FormActionRequest addresses a stored form; UserID comes from the identity
// middleware.
type FormActionRequest struct {
	FormID string `json:"-" validate:"required,max=64"`
	UserID string `json:"-"`
}

type FormResponse struct {
	Form        *entity.DonationForm `json:"form"`
	FinalAmount float64              `json:"finalAmount"`
	Impact      string               `json:"impact"`
	CanAdvance  bool                 `json:"canAdvance"`
}

// SubmitDonationRequest is the one-shot variant of the wizard.
type SubmitDonationRequest struct {
	Type          string  `json:"type" validate:"required,oneof=single recurring"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Name          string  `json:"name" validate:"required,max=120"`
	Email         string  `json:"email" validate:"required,donoremail"`
	Phone         string  `json:"phone" validate:"donorphone"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,oneof=card transfer cash"`
	AcceptTerms   bool    `json:"acceptTerms" validate:"required"`
	EmergencyID   string  `json:"emergencyId" validate:"max=64"`
	UserID        string  `json:"-"`
}

type SubmitDonationResponse struct {
	Donation     entity.Donation      `json:"donation"`
	Payment      *Checkout            `json:"payment,omitempty"`
	Instructions string               `json:"instructions,omitempty"`
	Impact       string               `json:"impact"`
	Form         *entity.DonationForm `json:"form,omitempty"`
}
