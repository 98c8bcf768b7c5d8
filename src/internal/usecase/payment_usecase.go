package usecase

import (
	"context"
	"errors"
	"fmt"

	"donation-service/src/internal/gateway/payment"
	"donation-service/src/internal/model"
	httpError "donation-service/src/pkg/http-error"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// CheckoutOpener is the part of payment.Bridge the usecases need.
type CheckoutOpener interface {
	Open(ctx context.Context, cfg payment.Config) (*model.Checkout, error)
	Reload(ctx context.Context, sessionID string, cfg payment.Config) (*model.Checkout, error)
}

// PaymentSettings are the static provider parameters read from config.
type PaymentSettings struct {
	RemittanceEmail      string
	Description          string
	Production           bool
	Environment          payment.Environment
	Language             string
	PlanID               string
	ChargeOnSubscription bool
	AllowPlanChange      bool
}

func NewPaymentSettings(v *viper.Viper) PaymentSettings {
	return PaymentSettings{
		RemittanceEmail:      v.GetString("payment.remittance_email"),
		Description:          v.GetString("payment.description"),
		Production:           v.GetBool("payment.production"),
		Environment:          payment.Environment(v.GetString("payment.environment")),
		Language:             v.GetString("payment.language"),
		PlanID:               v.GetString("payment.plan_id"),
		ChargeOnSubscription: v.GetBool("payment.charge_on_subscription"),
		AllowPlanChange:      v.GetBool("payment.allow_plan_change"),
	}
}

// Check validates the settings with a placeholder amount so a mismatched
// production flag is caught at startup instead of at the first checkout.
func (s PaymentSettings) Check() error {
	cfg := s.Config(&model.CheckoutRequest{Amount: 1, Recurring: s.PlanID != ""})
	return cfg.Validate()
}

// Config builds the provider parameters for one checkout. Donations are
// fully tax exempt so the taxed base is always zero.
func (s PaymentSettings) Config(request *model.CheckoutRequest) payment.Config {
	description := s.Description
	if description == "" {
		description = "Donación"
	}
	if request.DonationID != "" {
		description = fmt.Sprintf("%s %s", description, request.DonationID)
	}
	return payment.Config{
		RemittanceEmail: s.RemittanceEmail,
		PayerEmail:      request.PayerEmail,
		PayerName:       request.PayerName,
		TaxExemptAmount: request.Amount,
		TaxedAmount:     0,
		Description:     description,
		Production:      s.Production,
		Environment:     s.Environment,
		Language:        s.Language,
		Recurring:       request.Recurring,
		PlanID:          s.PlanID,
		Schedule: payment.Schedule{
			ChargeOnSubscription: s.ChargeOnSubscription,
			AllowPlanChange:      s.AllowPlanChange,
		},
	}
}

type PaymentUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Bridge   CheckoutOpener
	Settings PaymentSettings
}

func NewPaymentUseCase(logger log.Log, validate *validator.Validate, bridge CheckoutOpener, settings PaymentSettings) *PaymentUseCase {
	return &PaymentUseCase{
		Log:      logger,
		Validate: validate,
		Bridge:   bridge,
		Settings: settings,
	}
}

func (c *PaymentUseCase) Checkout(ctx context.Context, request *model.CheckoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Checkout-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	checkout, err := c.open(ctx, request)
	if err != nil {
		result.Error = err
		return result
	}
	result.Data = checkout
	return result
}

func (c *PaymentUseCase) Reload(ctx context.Context, request *model.CheckoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Reload-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if request.SessionID == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "sessionId is required"
		errObj.Fields = map[string]string{"sessionId": "required"}
		result.Error = errObj
		return result
	}

	checkout, err := c.Bridge.Reload(ctx, request.SessionID, c.Settings.Config(request))
	if err != nil {
		c.Log.Error("payment-usecase", err.Error(), "Reload", request.SessionID)
		result.Error = paymentError(err)
		return result
	}
	result.Data = checkout
	return result
}

// open is shared with the donation flow, which opens a checkout for card
// payments. Recurring checkouts need a configured plan.
func (c *PaymentUseCase) open(ctx context.Context, request *model.CheckoutRequest) (*model.Checkout, error) {
	if request.Recurring && c.Settings.PlanID == "" {
		c.Log.Warn("payment-usecase", "recurring checkout without payment.plan_id", "Open", request.DonationID)
		errObj := unprocessable("Las donaciones recurrentes con tarjeta no están disponibles, elige otro método de pago")
		errObj.Fields = map[string]string{"paymentMethod": "recurring card payments unavailable"}
		return nil, errObj
	}
	checkout, err := c.Bridge.Open(ctx, c.Settings.Config(request))
	if err != nil {
		c.Log.Error("payment-usecase", err.Error(), "Open", utils.ConvertString(request))
		return nil, paymentError(err)
	}
	c.Log.Info("payment-usecase", "checkout opened", "Open", checkout.SessionID)
	return checkout, nil
}

func paymentError(err error) *httpError.CommonError {
	if errors.Is(err, payment.ErrInvalidConfig) {
		errObj := httpError.NewInternalServerError()
		errObj.Message = err.Error()
		return errObj
	}
	errObj := httpError.NewServiceUnavailable()
	errObj.Message = "El servicio de pago no está disponible, intenta nuevamente"
	return errObj
}
