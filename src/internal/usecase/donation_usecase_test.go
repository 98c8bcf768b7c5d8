package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"donation-service/src/internal/entity"
	"donation-service/src/internal/gateway/messaging"
	"donation-service/src/internal/gateway/payment"
	"donation-service/src/internal/model"
	"donation-service/src/internal/repository"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeCheckout struct {
	err     error
	configs []payment.Config
}

func (f *fakeCheckout) Open(_ context.Context, cfg payment.Config) (*model.Checkout, error) {
	f.configs = append(f.configs, cfg)
	if f.err != nil {
		return nil, f.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &model.Checkout{SessionID: "session-1", AutoOpen: true, Config: cfg.Params()}, nil
}

func (f *fakeCheckout) Reload(_ context.Context, sessionID string, cfg payment.Config) (*model.Checkout, error) {
	f.configs = append(f.configs, cfg)
	if f.err != nil {
		return nil, f.err
	}
	return &model.Checkout{SessionID: sessionID, Config: cfg.Params()}, nil
}

func sandboxSettings() PaymentSettings {
	return PaymentSettings{
		RemittanceEmail: "donaciones@bancodealimentos.org",
		Description:     "Donación Banco de Alimentos",
		Environment:     payment.Sandbox,
		PlanID:          "plan-mensual",
	}
}

type DonationUseCaseTestSuite struct {
	suite.Suite
	donations *repository.MemoryDonationRepository
	forms     *repository.MemorySessionRepository
	producer  *recordingProducer
	checkout  *fakeCheckout
	usecase   *DonationUseCase
}

func TestDonationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DonationUseCaseTestSuite))
}

func (suite *DonationUseCaseTestSuite) SetupTest() {
	logger, validate := testDeps()
	suite.donations = repository.NewMemoryDonationRepository(repository.DefaultSeed(), 0)
	suite.forms = repository.NewMemorySessionRepository()
	suite.producer = &recordingProducer{}
	suite.checkout = &fakeCheckout{}
	suite.usecase = NewDonationUseCase(logger, validate, suite.donations, suite.forms,
		messaging.NewDonationProducer(suite.producer, "", logger),
		NewPaymentUseCase(logger, validate, suite.checkout, sandboxSettings()),
		0,
	)
	suite.usecase.Now = func() time.Time { return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC) }
}

func (suite *DonationUseCaseTestSuite) createForm(request *model.CreateFormRequest) string {
	result := suite.usecase.CreateForm(context.Background(), request)
	suite.Require().NoError(result.Error)
	return result.Data.(model.FormResponse).Form.ID
}

func (suite *DonationUseCaseTestSuite) update(id string, request model.UpdateFormRequest) model.FormResponse {
	request.FormID = id
	result := suite.usecase.UpdateForm(context.Background(), &request)
	suite.Require().NoError(result.Error)
	return result.Data.(model.FormResponse)
}

func ptr[T any](v T) *T {
	return &v
}

func (suite *DonationUseCaseTestSuite) TestOptions() {
	t := suite.T()
	options := suite.usecase.Options().Data.(model.DonationOptionsResponse)
	require.Equal(t, []float64{10, 25, 50, 100}, options.PresetAmounts)
	require.Equal(t, []string{"card", "transfer", "cash"}, options.PaymentMethods)
}

func (suite *DonationUseCaseTestSuite) TestWizardTransfer() {
	t := suite.T()
	ctx := context.Background()
	id := suite.createForm(&model.CreateFormRequest{Amount: 25, Type: "single", Emergency: "em-001"})
	action := &model.FormActionRequest{FormID: id, UserID: repository.CurrentUserID}

	result := suite.usecase.GetForm(ctx, action)
	require.NoError(t, result.Error)
	form := result.Data.(model.FormResponse)
	require.Equal(t, 25.0, form.FinalAmount)
	require.Equal(t, "Tu donación puede alimentar a 12 familias por un día", form.Impact)
	require.True(t, form.CanAdvance)

	result = suite.usecase.Next(ctx, action)
	require.NoError(t, result.Error)
	require.Equal(t, entity.StepPersonal, result.Data.(model.FormResponse).Form.Step)

	result = suite.usecase.Next(ctx, action)
	ce := requireError(t, result.Error, http.StatusBadRequest)
	require.Contains(t, ce.Fields, "name")
	require.Contains(t, ce.Fields, "email")

	suite.update(id, model.UpdateFormRequest{Name: ptr("Sofía Ramírez"), Email: ptr("sofia@example.com")})
	result = suite.usecase.Next(ctx, action)
	require.NoError(t, result.Error)
	require.Equal(t, entity.StepPayment, result.Data.(model.FormResponse).Form.Step)

	suite.update(id, model.UpdateFormRequest{PaymentMethod: ptr("transfer"), AcceptTerms: ptr(true)})
	result = suite.usecase.SubmitForm(ctx, action)
	require.NoError(t, result.Error)

	resp := result.Data.(*model.SubmitDonationResponse)
	require.Regexp(t, `^don-`, resp.Donation.ID)
	require.Equal(t, entity.DonationPending, resp.Donation.Status)
	require.Equal(t, "em-001", resp.Donation.EmergencyID)
	require.Equal(t, repository.CurrentUserID, resp.Donation.UserID)
	require.Contains(t, resp.Instructions, resp.Donation.ID)
	require.Nil(t, resp.Payment)
	require.True(t, resp.Form.Submitted)
	require.Empty(t, suite.checkout.configs)

	donations, err := suite.donations.ListDonations(ctx)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	require.Equal(t, []string{"donation-created"}, suite.producer.topics())

	// the stored form is closed for edits
	result = suite.usecase.Next(ctx, action)
	requireError(t, result.Error, http.StatusConflict)
	result = suite.usecase.UpdateForm(ctx, &model.UpdateFormRequest{FormID: id, Name: ptr("otro")})
	requireError(t, result.Error, http.StatusConflict)

	result = suite.usecase.ResetForm(ctx, action)
	require.NoError(t, result.Error)
	reset := result.Data.(model.FormResponse)
	require.Equal(t, entity.StepAmount, reset.Form.Step)
	require.False(t, reset.Form.Submitted)
	require.Equal(t, "em-001", reset.Form.EmergencyID)
	require.Equal(t, impactPrompt, reset.Impact)
}

func (suite *DonationUseCaseTestSuite) TestWizardCard() {
	t := suite.T()
	ctx := context.Background()
	id := suite.createForm(&model.CreateFormRequest{Type: "recurring"})
	action := &model.FormActionRequest{FormID: id}

	suite.update(id, model.UpdateFormRequest{CustomAmount: ptr("42,50")})
	require.NoError(t, suite.usecase.Next(ctx, action).Error)
	suite.update(id, model.UpdateFormRequest{Name: ptr("Juan"), Email: ptr("juan@example.com"), Phone: ptr("+54 351 555-0303")})
	require.NoError(t, suite.usecase.Next(ctx, action).Error)
	suite.update(id, model.UpdateFormRequest{PaymentMethod: ptr("card"), AcceptTerms: ptr(true)})

	result := suite.usecase.SubmitForm(ctx, action)
	require.NoError(t, result.Error)
	resp := result.Data.(*model.SubmitDonationResponse)
	require.NotNil(t, resp.Payment)
	require.Equal(t, "session-1", resp.Payment.SessionID)
	require.True(t, resp.Donation.Recurring)
	require.Equal(t, 42.5, resp.Donation.Amount)

	require.Len(t, suite.checkout.configs, 1)
	cfg := suite.checkout.configs[0]
	require.Equal(t, 42.5, cfg.TaxExemptAmount)
	require.Zero(t, cfg.TaxedAmount)
	require.True(t, cfg.Recurring)
	require.Equal(t, "Donación Banco de Alimentos "+resp.Donation.ID, cfg.Description)
	require.Equal(t, "juan@example.com", cfg.PayerEmail)
}

func (suite *DonationUseCaseTestSuite) TestCardProviderDown() {
	t := suite.T()
	ctx := context.Background()
	suite.checkout.err = errors.New("sdk unavailable")

	result := suite.usecase.Submit(ctx, &model.SubmitDonationRequest{
		Type:          "single",
		Amount:        50,
		Name:          "Ana",
		Email:         "ana@example.com",
		PaymentMethod: "card",
		AcceptTerms:   true,
	})
	ce := requireError(t, result.Error, http.StatusServiceUnavailable)
	require.True(t, ce.Retryable)

	donations, err := suite.donations.ListDonations(ctx)
	require.NoError(t, err)
	require.Empty(t, donations)
	require.Empty(t, suite.producer.topics())
}

func (suite *DonationUseCaseTestSuite) TestRecurringCardWithoutPlan() {
	t := suite.T()
	ctx := context.Background()
	settings := sandboxSettings()
	settings.PlanID = ""
	suite.usecase.Payment.Settings = settings

	result := suite.usecase.Submit(ctx, &model.SubmitDonationRequest{
		Type:          "recurring",
		Amount:        25,
		Name:          "Ana",
		Email:         "ana@example.com",
		PaymentMethod: "card",
		AcceptTerms:   true,
	})
	ce := requireError(t, result.Error, http.StatusUnprocessableEntity)
	require.Contains(t, ce.Fields, "paymentMethod")
	require.Empty(t, suite.checkout.configs)

	donations, err := suite.donations.ListDonations(ctx)
	require.NoError(t, err)
	require.Empty(t, donations)

	result = suite.usecase.Submit(ctx, &model.SubmitDonationRequest{
		Type:          "single",
		Amount:        25,
		Name:          "Ana",
		Email:         "ana@example.com",
		PaymentMethod: "card",
		AcceptTerms:   true,
	})
	require.NoError(t, result.Error)
}

func (suite *DonationUseCaseTestSuite) TestSubmitCash() {
	t := suite.T()
	result := suite.usecase.Submit(context.Background(), &model.SubmitDonationRequest{
		Type:          "single",
		Amount:        100,
		Name:          " Ana ",
		Email:         "ana@example.com",
		PaymentMethod: "cash",
		AcceptTerms:   true,
	})
	require.NoError(t, result.Error)
	resp := result.Data.(*model.SubmitDonationResponse)
	require.Equal(t, "Ana", resp.Donation.DonorName)
	require.Contains(t, resp.Instructions, "centros de acopio")
	require.Equal(t, "Tu donación puede alimentar a 20 familias durante una semana", resp.Impact)
}

func (suite *DonationUseCaseTestSuite) TestSubmitValidation() {
	t := suite.T()
	result := suite.usecase.Submit(context.Background(), &model.SubmitDonationRequest{
		Type:          "single",
		Amount:        0,
		Email:         "no-email",
		Phone:         "x",
		PaymentMethod: "bitcoin",
	})
	ce := requireError(t, result.Error, http.StatusBadRequest)
	for _, field := range []string{"amount", "name", "email", "phone", "paymentMethod", "acceptTerms"} {
		require.Contains(t, ce.Fields, field)
	}
}

func (suite *DonationUseCaseTestSuite) TestSubmitFormEarly() {
	t := suite.T()
	ctx := context.Background()
	id := suite.createForm(&model.CreateFormRequest{Amount: 10})

	result := suite.usecase.SubmitForm(ctx, &model.FormActionRequest{FormID: id})
	ce := requireError(t, result.Error, http.StatusBadRequest)
	require.Equal(t, "Completa todos los pasos antes de confirmar la donación", ce.Message)
}

func (suite *DonationUseCaseTestSuite) TestSubmitFormJumpsBack() {
	t := suite.T()
	ctx := context.Background()
	id := suite.createForm(&model.CreateFormRequest{Amount: 50})
	action := &model.FormActionRequest{FormID: id}

	require.NoError(t, suite.usecase.Next(ctx, action).Error)
	suite.update(id, model.UpdateFormRequest{Name: ptr("Lucía"), Email: ptr("lucia@example.com")})
	require.NoError(t, suite.usecase.Next(ctx, action).Error)
	suite.update(id, model.UpdateFormRequest{Email: ptr("lucia@"), PaymentMethod: ptr("cash"), AcceptTerms: ptr(true)})

	result := suite.usecase.SubmitForm(ctx, action)
	ce := requireError(t, result.Error, http.StatusBadRequest)
	require.Contains(t, ce.Fields, "email")

	stored := suite.usecase.GetForm(ctx, action).Data.(model.FormResponse).Form
	require.Equal(t, entity.StepPersonal, stored.Step)
	require.Equal(t, "Lucía", stored.Name)
	require.Equal(t, entity.PaymentCash, stored.PaymentMethod)
}

func (suite *DonationUseCaseTestSuite) TestUpdateAmounts() {
	t := suite.T()
	id := suite.createForm(&model.CreateFormRequest{Amount: 33})

	form := suite.update(id, model.UpdateFormRequest{})
	require.Equal(t, "33", form.Form.CustomAmount)
	require.Nil(t, form.Form.SelectedAmount)

	form = suite.update(id, model.UpdateFormRequest{SelectedAmount: ptr(50.0), CustomAmount: ptr("70")})
	require.Equal(t, 50.0, form.FinalAmount)
	require.Empty(t, form.Form.CustomAmount)

	form = suite.update(id, model.UpdateFormRequest{CustomAmount: ptr("abc")})
	require.Zero(t, form.FinalAmount)
	require.False(t, form.CanAdvance)
	require.Equal(t, impactPrompt, form.Impact)
}

func (suite *DonationUseCaseTestSuite) TestFormNotFound() {
	t := suite.T()
	result := suite.usecase.GetForm(context.Background(), &model.FormActionRequest{FormID: "missing"})
	ce := requireError(t, result.Error, http.StatusNotFound)
	require.Equal(t, "/donaciones", ce.Redirect)

	result = suite.usecase.GetForm(context.Background(), &model.FormActionRequest{})
	requireError(t, result.Error, http.StatusBadRequest)

	result = suite.usecase.CreateForm(context.Background(), &model.CreateFormRequest{Type: "weekly"})
	requireError(t, result.Error, http.StatusBadRequest)
}

func (suite *DonationUseCaseTestSuite) TestImpact() {
	t := suite.T()
	amount := 75.0
	resp := suite.usecase.Impact(&model.DonationImpactRequest{Amount: &amount}).Data.(model.DonationImpactResponse)
	require.Equal(t, 75.0, resp.Amount)
	require.Equal(t, "Tu donación permite rescatar 150 kg de alimentos", resp.Message)

	resp = suite.usecase.Impact(&model.DonationImpactRequest{}).Data.(model.DonationImpactResponse)
	require.Zero(t, resp.Amount)
	require.Equal(t, impactPrompt, resp.Message)
}
