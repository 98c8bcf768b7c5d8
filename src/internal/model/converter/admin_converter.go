package converter

import (
	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"
)

func UserToSummary(u entity.User) model.UserSummary {
	summary := model.UserSummary{
		ID:            u.ID,
		Name:          u.FullName(),
		Email:         u.Email,
		DonationCount: len(u.Donations),
	}
	for _, d := range u.Donations {
		summary.TotalDonated += d.Amount
		if d.Recurring {
			summary.HasRecurring = true
		}
	}
	return summary
}

func UpsertRequestToReward(r *model.UpsertRewardRequest) entity.Reward {
	return entity.Reward{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		PointsRequired:    r.PointsRequired,
		Image:             r.Image,
		Type:              entity.RewardType(r.Type),
		Active:            r.Active,
		AvailableQuantity: r.AvailableQuantity,
		Highlighted:       r.Highlighted,
	}
}
