package model

import "donation-service/src/internal/entity"

type GetRewardRequest struct {
	ID string `json:"id" validate:"required,max=64"`
}

type RedeemRewardRequest struct {
	UserID   string `json:"userId" validate:"required,max=64"`
	RewardID string `json:"rewardId" validate:"required,max=64"`
}

type RedeemRewardResponse struct {
	Message    string            `json:"message"`
	UserReward entity.UserReward `json:"userReward"`
	Points     entity.UserPoints `json:"points"`
}

type RewardHistoryResponse struct {
	Rewards      []entity.UserReward       `json:"rewards"`
	Transactions []entity.PointTransaction `json:"transactions"`
}

type RewardsOverviewResponse struct {
	Rewards     []entity.Reward           `json:"rewards"`
	Points      entity.UserPoints         `json:"points"`
	Leaderboard []entity.LeaderboardEntry `json:"leaderboard"`
}

type SearchRequest struct {
	Query string `query:"q" validate:"required,max=200"`
	Kind  string `query:"kind" validate:"omitempty,oneof=emergency reward"`
	Limit int    `query:"limit" validate:"gte=0,lte=50"`
}

type SearchHit struct {
	Kind  string  `json:"kind"`
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}
