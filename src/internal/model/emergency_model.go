package model

import "donation-service/src/internal/entity"

type GetEmergencyRequest struct {
	ID string `json:"id" validate:"required,max=64"`
}

type EmergencyResponse struct {
	entity.Emergency
	Progress float64 `json:"progress"`
}

type BannerRequest struct {
	SessionID string `json:"sessionId" validate:"required,max=128"`
}

type BannerResponse struct {
	Items        []EmergencyResponse `json:"items"`
	CurrentIndex int                 `json:"currentIndex"`
	Indicators   []bool              `json:"indicators,omitempty"`
	RotateEvery  int                 `json:"rotateEverySeconds"`
	Dismissed    bool                `json:"dismissed"`
	Visible      bool                `json:"visible"`
}
