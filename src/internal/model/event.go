package model

import "time"

type Event interface {
	GetId() string
}

type DonationCreatedEvent struct {
	EventID     string    `json:"event_id"`
	DonationID  string    `json:"donation_id"`
	Amount      float64   `json:"amount"`
	Recurring   bool      `json:"recurring"`
	Method      string    `json:"payment_method"`
	EmergencyID string    `json:"emergency_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e *DonationCreatedEvent) GetId() string {
	return e.DonationID
}

type RewardEvent struct {
	EventID      string    `json:"event_id"`
	UserRewardID string    `json:"user_reward_id"`
	UserID       string    `json:"user_id"`
	RewardID     string    `json:"reward_id"`
	Status       string    `json:"status"`
	Points       int       `json:"points,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e *RewardEvent) GetId() string {
	return e.UserRewardID
}
