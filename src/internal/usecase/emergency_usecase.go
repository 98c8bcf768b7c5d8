package usecase

import (
	"context"
	"time"

	"donation-service/src/internal/model"
	"donation-service/src/internal/model/converter"
	"donation-service/src/internal/repository"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type EmergencyUseCase struct {
	Log                 log.Log
	Validate            *validator.Validate
	EmergencyRepository repository.EmergencyRepository
	BannerRepository    repository.BannerRepository
	RotationInterval    time.Duration
	DismissTTL          time.Duration
	Now                 func() time.Time
}

func NewEmergencyUseCase(
	logger log.Log,
	validate *validator.Validate,
	emergencyRepository repository.EmergencyRepository,
	bannerRepository repository.BannerRepository,
	rotationInterval time.Duration,
	dismissTTL time.Duration,
) *EmergencyUseCase {
	if rotationInterval <= 0 {
		rotationInterval = 8 * time.Second
	}
	if dismissTTL <= 0 {
		dismissTTL = 24 * time.Hour
	}
	return &EmergencyUseCase{
		Log:                 logger,
		Validate:            validate,
		EmergencyRepository: emergencyRepository,
		BannerRepository:    bannerRepository,
		RotationInterval:    rotationInterval,
		DismissTTL:          dismissTTL,
		Now:                 time.Now,
	}
}

func (c *EmergencyUseCase) List(ctx context.Context) utils.Result {
	var result utils.Result

	emergencies, err := c.EmergencyRepository.List(ctx)
	if err != nil {
		c.Log.Error("emergency-usecase", err.Error(), "List", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = converter.EmergenciesToResponse(emergencies)
	return result
}

func (c *EmergencyUseCase) Get(ctx context.Context, request *model.GetEmergencyRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("GetEmergency-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	emergency, err := c.EmergencyRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetEmergency-FindByID", err.Error(), "request", utils.ConvertString(request))
		result.Error = storeError(err, "Emergencia no encontrada", "/emergencias")
		return result
	}
	result.Data = converter.EmergencyToResponse(*emergency)
	return result
}

func (c *EmergencyUseCase) Critical(ctx context.Context) utils.Result {
	var result utils.Result

	emergencies, err := c.EmergencyRepository.ListCritical(ctx)
	if err != nil {
		c.Log.Error("emergency-usecase", err.Error(), "Critical", "")
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = converter.EmergenciesToResponse(emergencies)
	return result
}

// Banner returns the alert banner state. With more than one critical
// emergency the displayed index advances every RotationInterval; the index is
// derived from the clock so every caller sees the same item.
func (c *EmergencyUseCase) Banner(ctx context.Context, request *model.BannerRequest) utils.Result {
	var result utils.Result

	if request.SessionID != "" {
		if err := c.Validate.Struct(request); err != nil {
			result.Error = validationError(err)
			return result
		}
	}

	critical, err := c.EmergencyRepository.ListCritical(ctx)
	if err != nil {
		c.Log.Error("emergency-usecase", err.Error(), "Banner", "")
		result.Error = storeError(err, "", "")
		return result
	}

	dismissed := false
	if request.SessionID != "" {
		dismissed, err = c.BannerRepository.IsDismissed(ctx, request.SessionID)
		if err != nil {
			c.Log.Error("emergency-usecase", err.Error(), "IsDismissed", request.SessionID)
			dismissed = false
		}
	}

	response := model.BannerResponse{
		Items:       converter.EmergenciesToResponse(critical),
		RotateEvery: int(c.RotationInterval / time.Second),
		Dismissed:   dismissed,
		Visible:     len(critical) > 0 && !dismissed,
	}
	if n := len(critical); n > 1 {
		response.CurrentIndex = int((c.Now().UnixNano() / int64(c.RotationInterval)) % int64(n))
		response.Indicators = make([]bool, n)
		response.Indicators[response.CurrentIndex] = true
	}
	result.Data = response
	return result
}

func (c *EmergencyUseCase) DismissBanner(ctx context.Context, request *model.BannerRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("DismissBanner-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if err := c.BannerRepository.Dismiss(ctx, request.SessionID, c.DismissTTL); err != nil {
		c.Log.Error("emergency-usecase", err.Error(), "Dismiss", request.SessionID)
		result.Error = storeError(err, "", "")
		return result
	}
	result.Data = model.BannerResponse{Items: []model.EmergencyResponse{}, Dismissed: true}
	return result
}
