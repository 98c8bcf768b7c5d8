package model

// Checkout is what the browser needs to open the provider overlay.
type Checkout struct {
	SessionID string                 `json:"sessionId"`
	ScriptURL string                 `json:"scriptUrl"`
	ButtonID  string                 `json:"buttonId"`
	AutoOpen  bool                   `json:"autoOpen"`
	Config    map[string]interface{} `json:"config"`
}

type CheckoutRequest struct {
	SessionID  string  `json:"sessionId" validate:"max=128"`
	DonationID string  `json:"donationId" validate:"max=64"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	Recurring  bool    `json:"recurring"`
	PayerName  string  `json:"payerName" validate:"required,max=120"`
	PayerEmail string  `json:"payerEmail" validate:"required,donoremail"`
}

type SiteResponse struct {
	Organization string            `json:"organization"`
	Navigation   map[string]string `json:"navigation"`
	Footer       map[string]string `json:"footer"`
}
