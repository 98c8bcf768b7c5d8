package converter

import (
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"

	"github.com/google/uuid"
)

func DonationToEvent(d *entity.Donation) *model.DonationCreatedEvent {
	return &model.DonationCreatedEvent{
		EventID:     uuid.NewString(),
		DonationID:  d.ID,
		Amount:      d.Amount,
		Recurring:   d.Recurring,
		Method:      string(d.PaymentMethod),
		EmergencyID: d.EmergencyID,
		CreatedAt:   d.Date,
	}
}

func UserRewardToEvent(ur *entity.UserReward, points int) *model.RewardEvent {
	return &model.RewardEvent{
		EventID:      uuid.NewString(),
		UserRewardID: ur.ID,
		UserID:       ur.UserID,
		RewardID:     ur.RewardID,
		Status:       string(ur.Status),
		Points:       points,
		OccurredAt:   time.Now().UTC(),
	}
}
