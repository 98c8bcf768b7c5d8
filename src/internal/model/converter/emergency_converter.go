package converter

import (
	"donation-service/src/internal/entity"
	"donation-service/src/internal/model"
)

func EmergencyToResponse(e entity.Emergency) model.EmergencyResponse {
	return model.EmergencyResponse{
		Emergency: e,
		Progress:  e.Progress(),
	}
}

func EmergenciesToResponse(list []entity.Emergency) []model.EmergencyResponse {
	out := make([]model.EmergencyResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EmergencyToResponse(e))
	}
	return out
}
