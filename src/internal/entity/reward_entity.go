package entity

import "time"

type RewardType string

const (
	RewardBadge       RewardType = "Badge"
	RewardCertificate RewardType = "Certificate"
	RewardExperience  RewardType = "Experience"
	RewardDiscount    RewardType = "Discount"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardBadge, RewardCertificate, RewardExperience, RewardDiscount:
		return true
	}
	return false
}

type Reward struct {
	ID                string     `json:"id" db:"id"`
	Title             string     `json:"title" db:"title"`
	Description       string     `json:"description" db:"description"`
	PointsRequired    int        `json:"pointsRequired" db:"points_required"`
	Image             string     `json:"image" db:"image"`
	Type              RewardType `json:"type" db:"reward_type"`
	Active            bool       `json:"active" db:"active"`
	AvailableQuantity *int       `json:"availableQuantity,omitempty" db:"available_quantity"`
	Highlighted       bool       `json:"highlighted,omitempty" db:"highlighted"`
}

type UserRewardStatus string

const (
	StatusAssigned  UserRewardStatus = "Assigned"
	StatusRedeemed  UserRewardStatus = "Redeemed"
	StatusDelivered UserRewardStatus = "Delivered"
	StatusExpired   UserRewardStatus = "Expired"
)

func (s UserRewardStatus) Valid() bool {
	switch s {
	case StatusAssigned, StatusRedeemed, StatusDelivered, StatusExpired:
		return true
	}
	return false
}

type UserReward struct {
	ID         string           `json:"id" db:"id"`
	UserID     string           `json:"userId" db:"user_id"`
	RewardID   string           `json:"rewardId" db:"reward_id"`
	Reward     Reward           `json:"reward" db:"-"`
	AssignedAt time.Time        `json:"assignedAt" db:"assigned_at"`
	Status     UserRewardStatus `json:"status" db:"status"`
	Code       string           `json:"code,omitempty" db:"code"`
	Notes      string           `json:"notes,omitempty" db:"notes"`
}

type TransactionType string

const (
	TransactionEarned  TransactionType = "Earned"
	TransactionSpent   TransactionType = "Spent"
	TransactionExpired TransactionType = "Expired"
)

type PointTransaction struct {
	ID          string          `json:"id" db:"id"`
	UserID      string          `json:"userId" db:"user_id"`
	Date        time.Time       `json:"date" db:"occurred_at"`
	Amount      int             `json:"amount" db:"amount"`
	Type        TransactionType `json:"type" db:"tx_type"`
	Description string          `json:"description" db:"description"`
}

// UserPoints is expected to keep Total == Available + Spent.
type UserPoints struct {
	UserID    string             `json:"userId" db:"user_id"`
	Total     int                `json:"total" db:"total"`
	Available int                `json:"available" db:"available"`
	Spent     int                `json:"spent" db:"spent"`
	History   []PointTransaction `json:"history" db:"-"`
}

type LeaderboardParticipant struct {
	UserID    string
	Name      string
	Points    int
	Anonymous bool
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	Points        int    `json:"points"`
	Anonymous     bool   `json:"anonymous"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}
