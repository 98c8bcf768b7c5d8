package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/model"
	"donation-service/src/internal/model/converter"
	"donation-service/src/internal/repository"
	httpError "donation-service/src/pkg/http-error"
	"donation-service/src/pkg/log"
	"donation-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	transferInstructions = "Transferí el monto a la cuenta CBU 0070089420000001234567 indicando la referencia %s"
	cashInstructions     = "Acercate a cualquiera de nuestros centros de acopio con la referencia %s"
)

type DonationUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	DonationRepository repository.DonationRepository
	FormRepository     repository.FormRepository
	DonationProducer   *messaging.DonationProducer
	Payment            *PaymentUseCase
	FormTTL            time.Duration
	Now                func() time.Time
}

func NewDonationUseCase(
	logger log.Log,
	validate *validator.Validate,
	donationRepository repository.DonationRepository,
	formRepository repository.FormRepository,
	donationProducer *messaging.DonationProducer,
	paymentUseCase *PaymentUseCase,
	formTTL time.Duration,
) *DonationUseCase {
	if formTTL <= 0 {
		formTTL = 60 * time.Minute
	}
	return &DonationUseCase{
		Log:                logger,
		Validate:           validate,
		DonationRepository: donationRepository,
		FormRepository:     formRepository,
		DonationProducer:   donationProducer,
		Payment:            paymentUseCase,
		FormTTL:            formTTL,
		Now:                time.Now,
	}
}

func (c *DonationUseCase) Options() utils.Result {
	return utils.Result{Data: model.DonationOptionsResponse{
		PresetAmounts:  append([]float64{}, entity.PresetAmounts...),
		PaymentMethods: []string{string(entity.PaymentCard), string(entity.PaymentTransfer), string(entity.PaymentCash)},
		Types:          []string{string(entity.DonationSingle), string(entity.DonationRecurring)},
	}}
}

func (c *DonationUseCase) Impact(request *model.DonationImpactRequest) utils.Result {
	response := model.DonationImpactResponse{Message: DonationImpact(request.Amount)}
	if request.Amount != nil && *request.Amount > 0 {
		response.Amount = *request.Amount
	}
	return utils.Result{Data: response}
}

func (c *DonationUseCase) CreateForm(ctx context.Context, request *model.CreateFormRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("CreateForm-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	form := entity.NewDonationForm(uuid.NewString(), entity.DonationType(request.Type))
	form.EmergencyID = request.Emergency
	form.Prefill(request.Amount)

	if err := c.save(ctx, form); err != nil {
		result.Error = err
		return result
	}
	c.Log.Info("CreateForm", "donation form created", "formID", form.ID)
	result.Data = c.formResponse(form)
	return result
}

func (c *DonationUseCase) GetForm(ctx context.Context, request *model.FormActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("GetForm-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	form, err := c.load(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}
	result.Data = c.formResponse(form)
	return result
}

// UpdateForm applies a partial update. Amount fields keep the preset and
// custom inputs mutually exclusive; when both are sent the preset wins.
func (c *DonationUseCase) UpdateForm(ctx context.Context, request *model.UpdateFormRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("UpdateForm-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	form, err := c.loadOpen(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}

	if request.CustomAmount != nil {
		form.SetCustomAmount(*request.CustomAmount)
	}
	if request.SelectedAmount != nil {
		form.SelectAmount(*request.SelectedAmount)
	}
	if request.Name != nil {
		form.Name = *request.Name
	}
	if request.Email != nil {
		form.Email = *request.Email
	}
	if request.Phone != nil {
		form.Phone = *request.Phone
	}
	if request.PaymentMethod != nil {
		form.PaymentMethod = entity.PaymentMethod(*request.PaymentMethod)
	}
	if request.AcceptTerms != nil {
		form.AcceptTerms = *request.AcceptTerms
	}

	if errSave := c.save(ctx, form); errSave != nil {
		result.Error = errSave
		return result
	}
	result.Data = c.formResponse(form)
	return result
}

func (c *DonationUseCase) Next(ctx context.Context, request *model.FormActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	form, err := c.loadOpen(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}

	advanced := form.Next()
	if errSave := c.save(ctx, form); errSave != nil {
		result.Error = errSave
		return result
	}
	if !advanced {
		result.Error = formError("Revisa los datos del paso actual", form.Errors)
		return result
	}
	result.Data = c.formResponse(form)
	return result
}

func (c *DonationUseCase) Back(ctx context.Context, request *model.FormActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	form, err := c.loadOpen(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}

	form.Back()
	if errSave := c.save(ctx, form); errSave != nil {
		result.Error = errSave
		return result
	}
	result.Data = c.formResponse(form)
	return result
}

// SubmitForm confirms a wizard sitting on the payment step. Any failure
// leaves the entered data in the stored form.
func (c *DonationUseCase) SubmitForm(ctx context.Context, request *model.FormActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	form, err := c.loadOpen(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}
	if form.Step != entity.StepPayment {
		result.Error = formError("Completa todos los pasos antes de confirmar la donación", nil)
		return result
	}
	if !form.Validate() {
		if errSave := c.save(ctx, form); errSave != nil {
			result.Error = errSave
			return result
		}
		result.Error = formError("Revisa los datos de la donación", form.Errors)
		return result
	}

	response, errSubmit := c.submit(ctx, donationDraft{
		Amount:      form.FinalAmount(),
		Recurring:   form.Type == entity.DonationRecurring,
		Method:      form.PaymentMethod,
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		Phone:       strings.TrimSpace(form.Phone),
		EmergencyID: form.EmergencyID,
		UserID:      request.UserID,
	})
	if errSubmit != nil {
		result.Error = errSubmit
		return result
	}

	form.MarkSubmitted(response.Donation.ID)
	if errSave := c.save(ctx, form); errSave != nil {
		c.Log.Error("SubmitForm", errSave.Error(), "formID", form.ID)
	}
	response.Form = form
	result.Data = response
	return result
}

func (c *DonationUseCase) ResetForm(ctx context.Context, request *model.FormActionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		return result
	}
	form, err := c.load(ctx, request.FormID)
	if err != nil {
		result.Error = err
		return result
	}

	form.Reset()
	if errSave := c.save(ctx, form); errSave != nil {
		result.Error = errSave
		return result
	}
	result.Data = c.formResponse(form)
	return result
}

// Submit is the one-shot variant used by clients that keep the wizard state
// themselves.
func (c *DonationUseCase) Submit(ctx context.Context, request *model.SubmitDonationRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = validationError(err)
		c.Log.Error("Submit-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	response, err := c.submit(ctx, donationDraft{
		Amount:      request.Amount,
		Recurring:   request.Type == string(entity.DonationRecurring),
		Method:      entity.PaymentMethod(request.PaymentMethod),
		Name:        strings.TrimSpace(request.Name),
		Email:       strings.TrimSpace(request.Email),
		Phone:       strings.TrimSpace(request.Phone),
		EmergencyID: request.EmergencyID,
		UserID:      request.UserID,
	})
	if err != nil {
		result.Error = err
		return result
	}
	result.Data = response
	return result
}

type donationDraft struct {
	Amount      float64
	Recurring   bool
	Method      entity.PaymentMethod
	Name        string
	Email       string
	Phone       string
	EmergencyID string
	UserID      string
}

// submit records a pending donation. Card payments open the provider
// checkout first so a provider outage leaves nothing behind.
func (c *DonationUseCase) submit(ctx context.Context, draft donationDraft) (*model.SubmitDonationResponse, error) {
	donation := entity.Donation{
		ID:            "don-" + uuid.NewString(),
		UserID:        draft.UserID,
		EmergencyID:   draft.EmergencyID,
		Date:          c.Now().UTC(),
		Amount:        draft.Amount,
		PaymentMethod: draft.Method,
		Status:        entity.DonationPending,
		Recurring:     draft.Recurring,
		DonorName:     draft.Name,
		DonorEmail:    draft.Email,
		DonorPhone:    draft.Phone,
	}
	amount := draft.Amount
	response := &model.SubmitDonationResponse{Impact: DonationImpact(&amount)}

	switch draft.Method {
	case entity.PaymentCard:
		if c.Payment == nil {
			errObj := httpError.NewServiceUnavailable()
			errObj.Message = "El servicio de pago no está disponible, intenta nuevamente"
			return nil, errObj
		}
		checkout, err := c.Payment.open(ctx, &model.CheckoutRequest{
			DonationID: donation.ID,
			Amount:     draft.Amount,
			Recurring:  draft.Recurring,
			PayerName:  draft.Name,
			PayerEmail: draft.Email,
		})
		if err != nil {
			return nil, err
		}
		response.Payment = checkout
	case entity.PaymentTransfer:
		response.Instructions = fmt.Sprintf(transferInstructions, donation.ID)
	case entity.PaymentCash:
		response.Instructions = fmt.Sprintf(cashInstructions, donation.ID)
	}

	if err := c.DonationRepository.CreateDonation(ctx, &donation); err != nil {
		c.Log.Error("donation-usecase", err.Error(), "CreateDonation", utils.ConvertString(donation))
		return nil, storeError(err, "", "")
	}
	c.Log.Info("donation-usecase", "donation recorded", "submit", donation.ID)

	if c.DonationProducer != nil {
		if err := c.DonationProducer.SendDonationCreated(converter.DonationToEvent(&donation)); err != nil {
			c.Log.Error("donation-usecase", err.Error(), "SendDonationCreated", donation.ID)
		}
	}

	response.Donation = donation
	return response, nil
}

func (c *DonationUseCase) formResponse(form *entity.DonationForm) model.FormResponse {
	amount := form.FinalAmount()
	return model.FormResponse{
		Form:        form,
		FinalAmount: amount,
		Impact:      DonationImpact(&amount),
		CanAdvance:  !form.Submitted && len(form.ValidateStep(form.Step)) == 0,
	}
}

func (c *DonationUseCase) load(ctx context.Context, id string) (*entity.DonationForm, error) {
	form, err := c.FormRepository.Find(ctx, id)
	if err != nil {
		c.Log.Error("donation-usecase", err.Error(), "FindForm", id)
		return nil, storeError(err, "Formulario de donación no encontrado", "/donaciones")
	}
	return form, nil
}

// loadOpen is load for the operations a submitted form no longer accepts.
func (c *DonationUseCase) loadOpen(ctx context.Context, id string) (*entity.DonationForm, error) {
	form, err := c.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if form.Submitted {
		errObj := httpError.NewConflict()
		errObj.Message = "La donación ya fue enviada"
		return nil, errObj
	}
	return form, nil
}

func (c *DonationUseCase) save(ctx context.Context, form *entity.DonationForm) error {
	form.UpdatedAt = c.Now().UTC()
	if err := c.FormRepository.Save(ctx, form, c.FormTTL); err != nil {
		c.Log.Error("donation-usecase", err.Error(), "SaveForm", form.ID)
		return storeError(err, "", "")
	}
	return nil
}

func formError(message string, fields map[string]string) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = message
	if len(fields) > 0 {
		errObj.Fields = make(map[string]string, len(fields))
		for k, v := range fields {
			errObj.Fields[k] = v
		}
	}
	return errObj
}
