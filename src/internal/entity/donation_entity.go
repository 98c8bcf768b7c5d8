package entity

import "time"

type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCash     PaymentMethod = "cash"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCard, PaymentTransfer, PaymentCash:
		return true
	}
	return false
}

type DonationStatus string

const (
	DonationCompleted DonationStatus = "completed"
	DonationPending   DonationStatus = "pending"
	DonationFailed    DonationStatus = "failed"
)

type DonationType string

const (
	DonationSingle    DonationType = "single"
	DonationRecurring DonationType = "recurring"
)

type Donation struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId,omitempty"`
	EmergencyID   string         `json:"emergencyId,omitempty"`
	Date          time.Time      `json:"date"`
	Amount        float64        `json:"amount"`
	PaymentMethod PaymentMethod  `json:"paymentMethod"`
	Status        DonationStatus `json:"status"`
	Recurring     bool           `json:"recurring"`
	DonorName     string         `json:"donorName,omitempty"`
	DonorEmail    string         `json:"donorEmail,omitempty"`
	DonorPhone    string         `json:"donorPhone,omitempty"`
}

// User is the admin view of a donor; only seeded, never persisted.
type User struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	NationalID string     `json:"nationalId"`
	BirthDate  time.Time  `json:"birthDate"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	Province   string     `json:"province"`
	PostalCode string     `json:"postalCode"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Donations  []Donation `json:"donations"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
