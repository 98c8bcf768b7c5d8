package model

import "donation-service/src/internal/entity"

type DashboardStats struct {
	TotalUsers             int     `json:"totalUsers"`
	TotalDonations         int     `json:"totalDonations"`
	TotalAmount            float64 `json:"totalAmount"`
	AverageDonation        float64 `json:"averageDonation"`
	RecurringPercentage    int     `json:"recurringPercentage"`
	TotalAmountFormatted   string  `json:"totalAmountFormatted"`
	AverageAmountFormatted string  `json:"averageDonationFormatted"`
}

type UserSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	DonationCount int     `json:"donationCount"`
	TotalDonated  float64 `json:"totalDonated"`
	HasRecurring  bool    `json:"hasRecurring"`
}

type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
	Users []UserSummary  `json:"users"`
}

// UserDetailRequest drives the per-user donation table. Toggle is the
// column that was clicked; it flips Order when it equals Sort.
type UserDetailRequest struct {
	ID     string `json:"id" validate:"required,max=64"`
	Sort   string `query:"sort" validate:"omitempty,oneof=date amount"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
	Toggle string `query:"toggle" validate:"omitempty,oneof=date amount"`
}

type UserDetailResponse struct {
	User      entity.User       `json:"user"`
	Sort      string            `json:"sort"`
	Order     string            `json:"order"`
	Donations []entity.Donation `json:"donations"`
}

type UpsertRewardRequest struct {
	ID                string `json:"-"`
	Title             string `json:"title" validate:"required,max=120"`
	Description       string `json:"description" validate:"max=2000"`
	PointsRequired    int    `json:"pointsRequired" validate:"gt=0"`
	Image             string `json:"image" validate:"max=500"`
	Type              string `json:"type" validate:"required,oneof=Badge Certificate Experience Discount"`
	Active            bool   `json:"active"`
	AvailableQuantity *int   `json:"availableQuantity" validate:"omitempty,gte=0"`
	Highlighted       bool   `json:"highlighted"`
}

type AssignRewardRequest struct {
	UserID   string `json:"userId" validate:"required,max=64"`
	RewardID string `json:"rewardId" validate:"required,max=64"`
	Notes    string `json:"notes" validate:"max=500"`
}

type UpdateUserRewardStatusRequest struct {
	ID     string `json:"-" validate:"required,max=64"`
	Status string `json:"status" validate:"required,oneof=Assigned Redeemed Delivered Expired"`
}
