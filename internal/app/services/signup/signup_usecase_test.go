package signup

import (
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuthGateway struct{ mock.Mock }

func (m *mockAuthGateway) RegisterAccount(ctx context.Context, request *requests.RegisterAccount) (*models.Account, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAuthGateway) SendOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthGateway) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *mockAuthGateway) SendResetOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthGateway) VerifyResetOTP(ctx context.Context, email, otp string) error {
	return m.Called(ctx, email, otp).Error(0)
}

func (m *mockAuthGateway) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	return m.Called(ctx, request).Error(0)
}

type mockProfileGateway struct{ mock.Mock }

func (m *mockProfileGateway) CreatePatientProfile(ctx context.Context, request *requests.PatientProfileCreation) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockProfileGateway) CreateClinicProfile(ctx context.Context, request *requests.ClinicProfileCreation) error {
	return m.Called(ctx, request).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Stage(ctx context.Context, draftID string, file io.Reader, fileHeader *multipart.FileHeader) (*models.StagedObject, error) {
	args := m.Called(ctx, draftID, file, fileHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StagedObject), args.Error(1)
}

func (m *mockStorage) Fetch(ctx context.Context, ref string) (io.ReadCloser, *models.StagedObject, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*models.StagedObject), args.Error(2)
}

func (m *mockStorage) Exists(ctx context.Context, ref string) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *mockStorage) Release(ctx context.Context, refs ...string) error {
	return m.Called(ctx, refs).Error(0)
}

type mockAuditRepository struct {
	mock.Mock
	recorded []*models.SignupAttempt
}

func (m *mockAuditRepository) RecordAttempt(ctx context.Context, attempt *models.SignupAttempt) error {
	m.recorded = append(m.recorded, attempt)
	return m.Called(ctx, attempt).Error(0)
}

func (m *mockAuditRepository) LatestByEmailMasked(ctx context.Context, emailMasked string) (*models.SignupAttempt, error) {
	args := m.Called(ctx, emailMasked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupAttempt), args.Error(1)
}

func newUsecaseForTest(auth *mockAuthGateway, profile *mockProfileGateway, storage *mockStorage, audit *mockAuditRepository) *signupUsecase {
	return &signupUsecase{
		AuthGateway:     auth,
		ProfileGateway:  profile,
		Storage:         storage,
		AuditRepository: audit,
		Log:             zap.NewNop(),
	}
}

func patientDraft() *models.WizardDraft {
	return &models.WizardDraft{
		ID:    "draft-1",
		State: models.StateSubmitting,
		Role:  models.RolePatient,
		Patient: &models.PatientFields{
			FullName:    "Ada Osei",
			Email:       "ada@example.com",
			Password:    "Aa1!aaaa",
			DateOfBirth: "1990-04-12",
			HeightCm:    168,
			WeightKg:    61,
			Allergies:   []string{"Penicillin", "Other"},
		},
	}
}

func clinicDraft() *models.WizardDraft {
	return &models.WizardDraft{
		ID:    "draft-2",
		State: models.StateSubmitting,
		Role:  models.RoleClinic,
		Clinic: &models.ClinicFields{
			ClinicName:              "Sunrise Clinic",
			Email:                   "admin@sunrise.example",
			Password:                "Aa1!aaaa",
			RegistrationNumber:      "REG-100",
			VerificationDocumentRef: "staging/draft-2/doc",
		},
	}
}

func TestSignupUsecase_SubmitPatient(t *testing.T) {
	t.Run("happy path makes no deletion call and records a success", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, new(mockStorage), audit)

		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-1"}, nil)
		profile.On("CreatePatientProfile", mock.Anything, mock.MatchedBy(func(r *requests.PatientProfileCreation) bool {
			return r.UserRef == "acc-1" && len(r.Allergies) == 1 && r.Allergies[0] == "Penicillin"
		})).Return(nil)
		auth.On("SendOTP", mock.Anything, "ada@example.com").Return(nil)
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		outcome, err := uc.Submit(context.Background(), patientDraft())

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", outcome.Email)
		assert.Contains(t, outcome.RedirectTo, "verify-otp")
		auth.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
		assert.Equal(t, models.AttemptSucceeded, audit.recorded[0].Outcome)
	})

	t.Run("register failure makes zero deletion calls", func(t *testing.T) {
		auth := new(mockAuthGateway)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, new(mockProfileGateway), new(mockStorage), audit)

		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(nil, exceptions.ErrEmailAlreadyExists())
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(context.Background(), patientDraft())

		assert.Error(t, err)
		auth.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
		assert.Equal(t, "register-account", audit.recorded[0].FailedStage)
	})

	t.Run("profile failure deletes the account exactly once", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, new(mockStorage), audit)

		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-1"}, nil)
		profile.On("CreatePatientProfile", mock.Anything, mock.Anything).Return(exceptions.ErrUpstreamRejected("profile rejected"))
		auth.On("DeleteAccount", mock.Anything, "acc-1").Return(nil)
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(context.Background(), patientDraft())

		assert.Error(t, err)
		auth.AssertNumberOfCalls(t, "DeleteAccount", 1)
		assert.Equal(t, "create-profile", audit.recorded[0].FailedStage)
		assert.True(t, audit.recorded[0].Compensated)
	})

	t.Run("otp failure deletes the account exactly once", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, new(mockStorage), audit)

		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-1"}, nil)
		profile.On("CreatePatientProfile", mock.Anything, mock.Anything).Return(nil)
		auth.On("SendOTP", mock.Anything, mock.Anything).Return(exceptions.ErrUpstreamRejected("otp down"))
		auth.On("DeleteAccount", mock.Anything, "acc-1").Return(nil)
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(context.Background(), patientDraft())

		assert.Error(t, err)
		auth.AssertNumberOfCalls(t, "DeleteAccount", 1)
		assert.Equal(t, "send-otp", audit.recorded[0].FailedStage)
	})

	t.Run("failed deletion is audited and not retried", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, new(mockStorage), audit)

		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-1"}, nil)
		profile.On("CreatePatientProfile", mock.Anything, mock.Anything).Return(exceptions.ErrUpstreamRejected("profile rejected"))
		auth.On("DeleteAccount", mock.Anything, "acc-1").Return(exceptions.ErrSendHTTPRequest(nil))
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(context.Background(), patientDraft())

		assert.Error(t, err)
		auth.AssertNumberOfCalls(t, "DeleteAccount", 1)
		assert.False(t, audit.recorded[0].Compensated)
		assert.NotEmpty(t, audit.recorded[0].CompensationErr)
	})
}

func TestSignupUsecase_SubmitClinic(t *testing.T) {
	t.Run("missing document aborts before any remote call", func(t *testing.T) {
		auth := new(mockAuthGateway)
		storage := new(mockStorage)
		uc := newUsecaseForTest(auth, new(mockProfileGateway), storage, new(mockAuditRepository))

		draft := clinicDraft()
		draft.Clinic.VerificationDocumentRef = ""

		_, err := uc.Submit(context.Background(), draft)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrDocumentMissing().ClientMessage, customErr.ClientMessage)
		auth.AssertNotCalled(t, "RegisterAccount", mock.Anything, mock.Anything)
	})

	t.Run("vanished staged document aborts before register", func(t *testing.T) {
		auth := new(mockAuthGateway)
		storage := new(mockStorage)
		uc := newUsecaseForTest(auth, new(mockProfileGateway), storage, new(mockAuditRepository))

		storage.On("Exists", mock.Anything, "staging/draft-2/doc").Return(false, nil)

		_, err := uc.Submit(context.Background(), clinicDraft())

		assert.Error(t, err)
		auth.AssertNotCalled(t, "RegisterAccount", mock.Anything, mock.Anything)
	})

	t.Run("happy path streams the document and releases staged files", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		storage := new(mockStorage)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, storage, audit)

		storage.On("Exists", mock.Anything, "staging/draft-2/doc").Return(true, nil)
		storage.On("Fetch", mock.Anything, "staging/draft-2/doc").Return(
			io.NopCloser(strings.NewReader("pdf-bytes")),
			&models.StagedObject{Ref: "staging/draft-2/doc", FileName: "license.pdf", ContentType: "application/pdf"},
			nil,
		)
		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-2"}, nil)
		profile.On("CreateClinicProfile", mock.Anything, mock.MatchedBy(func(r *requests.ClinicProfileCreation) bool {
			return r.Data.UserRef == "acc-2" && r.VerificationDocument != nil && r.Logo == nil
		})).Return(nil)
		auth.On("SendOTP", mock.Anything, "admin@sunrise.example").Return(nil)
		storage.On("Release", mock.Anything, []string{"staging/draft-2/doc"}).Return(nil)
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		outcome, err := uc.Submit(context.Background(), clinicDraft())

		assert.NoError(t, err)
		assert.Contains(t, outcome.RedirectTo, "registration-complete")
		storage.AssertNumberOfCalls(t, "Release", 1)
	})

	t.Run("profile failure compensates and keeps staged files", func(t *testing.T) {
		auth := new(mockAuthGateway)
		profile := new(mockProfileGateway)
		storage := new(mockStorage)
		audit := new(mockAuditRepository)
		uc := newUsecaseForTest(auth, profile, storage, audit)

		storage.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
		storage.On("Fetch", mock.Anything, mock.Anything).Return(
			io.NopCloser(strings.NewReader("pdf-bytes")),
			&models.StagedObject{Ref: "staging/draft-2/doc", FileName: "license.pdf", ContentType: "application/pdf"},
			nil,
		)
		auth.On("RegisterAccount", mock.Anything, mock.Anything).Return(&models.Account{ID: "acc-2"}, nil)
		profile.On("CreateClinicProfile", mock.Anything, mock.Anything).Return(exceptions.ErrRegNumberAlreadyExists())
		auth.On("DeleteAccount", mock.Anything, "acc-2").Return(nil)
		audit.On("RecordAttempt", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Submit(context.Background(), clinicDraft())

		assert.Error(t, err)
		auth.AssertNumberOfCalls(t, "DeleteAccount", 1)
		storage.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}

func TestSignupUsecase_SubmitWithoutRole(t *testing.T) {
	uc := newUsecaseForTest(new(mockAuthGateway), new(mockProfileGateway), new(mockStorage), new(mockAuditRepository))

	_, err := uc.Submit(context.Background(), models.EmptyDraft("draft-0"))

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, exceptions.ErrRoleNotSelected().ClientMessage, customErr.ClientMessage)
}
