package signup

import (
	"context"
	"sync"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/dto/responses"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	signupUsecaseInstance contracts.SignupUsecase
	onceSignupUsecase     sync.Once
)

type signupUsecase struct {
	AuthGateway     contracts.AuthGateway
	ProfileGateway  contracts.ProfileGateway
	Storage         contracts.Storage
	AuditRepository contracts.AuditRepository
	Log             *zap.Logger
}

func NewSignupUsecase(
	authGateway contracts.AuthGateway,
	profileGateway contracts.ProfileGateway,
	storage contracts.Storage,
	auditRepository contracts.AuditRepository,
	logger *zap.Logger,
) contracts.SignupUsecase {
	onceSignupUsecase.Do(func() {
		signupUsecaseInstance = &signupUsecase{
			AuthGateway:     authGateway,
			ProfileGateway:  profileGateway,
			Storage:         storage,
			AuditRepository: auditRepository,
			Log:             logger,
		}
	})
	return signupUsecaseInstance
}

func (uc *signupUsecase) Submit(ctx context.Context, draft *models.WizardDraft) (*responses.SubmissionOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("signupUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", string(draft.Role)),
	)

	switch draft.Role {
	case models.RolePatient:
		return uc.submitPatient(ctx, draft)
	case models.RoleClinic:
		return uc.submitClinic(ctx, draft)
	}
	return nil, exceptions.ErrRoleNotSelected()
}

func (uc *signupUsecase) submitPatient(ctx context.Context, draft *models.WizardDraft) (*responses.SubmissionOutcome, error) {
	patient := draft.Patient

	var account *models.Account
	steps := []sagaStep{
		{
			name: constvars.StageRegisterAccount,
			run: func(ctx context.Context) error {
				created, err := uc.AuthGateway.RegisterAccount(ctx, &requests.RegisterAccount{
					Name:     patient.FullName,
					Email:    patient.Email,
					Password: patient.Password,
					Role:     string(models.RolePatient),
				})
				if err != nil {
					return err
				}
				account = created
				return nil
			},
			compensate: func(ctx context.Context) error {
				return uc.AuthGateway.DeleteAccount(ctx, account.ID)
			},
		},
		{
			name: constvars.StageCreateProfile,
			run: func(ctx context.Context) error {
				return uc.ProfileGateway.CreatePatientProfile(ctx, uc.buildPatientProfile(account.ID, patient))
			},
		},
		{
			name: constvars.StageSendOTP,
			run: func(ctx context.Context) error {
				return uc.AuthGateway.SendOTP(ctx, patient.Email)
			},
		},
	}

	result := runSaga(ctx, uc.Log, steps)
	uc.recordAttempt(ctx, draft, result)
	if !result.succeeded() {
		return nil, result.StepErr
	}

	uc.Log.Info("signupUsecase.Submit patient submission succeeded",
		zap.String("account_id", account.ID),
	)
	return &responses.SubmissionOutcome{
		Email:      patient.Email,
		RedirectTo: "/verify-otp?email=" + patient.Email,
	}, nil
}

func (uc *signupUsecase) submitClinic(ctx context.Context, draft *models.WizardDraft) (*responses.SubmissionOutcome, error) {
	clinic := draft.Clinic

	// The verification document must be staged before any remote call fires.
	if clinic.VerificationDocumentRef == "" {
		return nil, exceptions.ErrDocumentMissing()
	}
	exists, err := uc.Storage.Exists(ctx, clinic.VerificationDocumentRef)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, exceptions.ErrDocumentMissing()
	}

	var account *models.Account
	steps := []sagaStep{
		{
			name: constvars.StageRegisterAccount,
			run: func(ctx context.Context) error {
				created, err := uc.AuthGateway.RegisterAccount(ctx, &requests.RegisterAccount{
					Name:     clinic.ClinicName,
					Email:    clinic.Email,
					Password: clinic.Password,
					Role:     string(models.RoleClinic),
				})
				if err != nil {
					return err
				}
				account = created
				return nil
			},
			compensate: func(ctx context.Context) error {
				return uc.AuthGateway.DeleteAccount(ctx, account.ID)
			},
		},
		{
			name: constvars.StageCreateProfile,
			run: func(ctx context.Context) error {
				return uc.createClinicProfile(ctx, account.ID, clinic)
			},
		},
		{
			name: constvars.StageSendOTP,
			run: func(ctx context.Context) error {
				return uc.AuthGateway.SendOTP(ctx, clinic.Email)
			},
		},
	}

	result := runSaga(ctx, uc.Log, steps)
	uc.recordAttempt(ctx, draft, result)
	if !result.succeeded() {
		return nil, result.StepErr
	}

	// Staged files have been streamed upstream; their refs are no longer
	// needed. Release failures only log, same policy as compensation.
	refs := []string{clinic.VerificationDocumentRef}
	if clinic.LogoRef != "" {
		refs = append(refs, clinic.LogoRef)
	}
	if err := uc.Storage.Release(ctx, refs...); err != nil {
		uc.Log.Error("signupUsecase.Submit staged file release failed",
			zap.Error(err),
		)
	}

	uc.Log.Info("signupUsecase.Submit clinic submission succeeded",
		zap.String("account_id", account.ID),
	)
	return &responses.SubmissionOutcome{
		Email:      clinic.Email,
		RedirectTo: "/clinic/registration-complete?email=" + clinic.Email,
	}, nil
}

func (uc *signupUsecase) buildPatientProfile(accountID string, patient *models.PatientFields) *requests.PatientProfileCreation {
	profile := &requests.PatientProfileCreation{
		UserRef:           accountID,
		DateOfBirth:       patient.DateOfBirth,
		Gender:            patient.Gender,
		HeightCm:          patient.HeightCm,
		WeightKg:          patient.WeightKg,
		BloodGroup:        patient.BloodGroup,
		Allergies:         utils.StripOtherSentinel(patient.Allergies),
		ChronicConditions: utils.StripOtherSentinel(patient.ChronicConditions),
		Medications:       utils.StripOtherSentinel(patient.Medications),
		SmokingHabit:      patient.SmokingHabit,
		AlcoholHabit:      patient.AlcoholHabit,
		ExerciseFrequency: patient.ExerciseFrequency,
	}
	if patient.BloodPressure != nil {
		profile.BloodPressure = &requests.BloodPressure{
			Systolic:  patient.BloodPressure.Systolic,
			Diastolic: patient.BloodPressure.Diastolic,
		}
	}
	if patient.EmergencyContact != nil {
		profile.EmergencyContact = &requests.EmergencyContact{
			Name:     patient.EmergencyContact.Name,
			Phone:    patient.EmergencyContact.Phone,
			Relation: patient.EmergencyContact.Relation,
		}
	}
	if patient.Address != nil {
		profile.Address = buildAddress(patient.Address)
	}
	return profile
}

func (uc *signupUsecase) createClinicProfile(ctx context.Context, accountID string, clinic *models.ClinicFields) error {
	docReader, docInfo, err := uc.Storage.Fetch(ctx, clinic.VerificationDocumentRef)
	if err != nil {
		return err
	}
	defer docReader.Close()

	creation := &requests.ClinicProfileCreation{
		Data: &requests.ClinicProfileData{
			UserRef:            accountID,
			ClinicName:         clinic.ClinicName,
			PhoneNumber:        clinic.PhoneNumber,
			RegistrationNumber: clinic.RegistrationNumber,
			Specialties:        utils.StripOtherSentinel(clinic.Specialties),
			WorkingDays:        clinic.WorkingDays,
			OpeningTime:        clinic.OpeningTime,
			ClosingTime:        clinic.ClosingTime,
			Description:        clinic.Description,
		},
		VerificationDocument: &requests.FilePart{
			FieldName:   "verificationDocument",
			FileName:    docInfo.FileName,
			ContentType: docInfo.ContentType,
			Reader:      docReader,
		},
	}
	if clinic.Address != nil {
		creation.Data.Address = buildAddress(clinic.Address)
	}

	if clinic.LogoRef != "" {
		logoReader, logoInfo, err := uc.Storage.Fetch(ctx, clinic.LogoRef)
		if err != nil {
			return err
		}
		defer logoReader.Close()
		creation.Logo = &requests.FilePart{
			FieldName:   "logo",
			FileName:    logoInfo.FileName,
			ContentType: logoInfo.ContentType,
			Reader:      logoReader,
		}
	}

	return uc.ProfileGateway.CreateClinicProfile(ctx, creation)
}

func buildAddress(address *models.Address) *requests.Address {
	return &requests.Address{
		Line:       address.Line,
		City:       address.City,
		Province:   address.Province,
		PostalCode: address.PostalCode,
	}
}

// recordAttempt writes the audit document. Trail failures only log; the
// submission outcome is already decided by the time this runs.
func (uc *signupUsecase) recordAttempt(ctx context.Context, draft *models.WizardDraft, result *sagaResult) {
	attempt := &models.SignupAttempt{
		DraftID:     draft.ID,
		Role:        draft.Role,
		EmailMasked: utils.MaskEmail(draft.Email()),
		Outcome:     models.AttemptSucceeded,
		Compensated: result.Compensated,
		AttemptedAt: time.Now().UTC(),
	}
	if !result.succeeded() {
		attempt.Outcome = models.AttemptFailed
		attempt.FailedStage = result.FailedStage
		attempt.UpstreamMessage = result.StepErr.Error()
	}
	if result.CompensationErr != nil {
		attempt.CompensationErr = result.CompensationErr.Error()
	}

	if err := uc.AuditRepository.RecordAttempt(ctx, attempt); err != nil {
		uc.Log.Error("signupUsecase.Submit audit record failed",
			zap.String("draft_id", draft.ID),
			zap.Error(err),
		)
	}
}
