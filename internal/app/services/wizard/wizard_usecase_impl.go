package wizard

import (
	"context"
	"sync"

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
	wizardUsecaseInstance contracts.WizardUsecase
	onceWizardUsecase     sync.Once
)

type wizardUsecase struct {
	DraftStore    contracts.DraftStore
	SignupUsecase contracts.SignupUsecase
	Storage       contracts.Storage
	Log           *zap.Logger
	tokenSecret   string
	tokenExpHours int
}

func NewWizardUsecase(
	draftStore contracts.DraftStore,
	signupUsecase contracts.SignupUsecase,
	storage contracts.Storage,
	logger *zap.Logger,
	tokenSecret string,
	tokenExpHours int,
) contracts.WizardUsecase {
	onceWizardUsecase.Do(func() {
		wizardUsecaseInstance = &wizardUsecase{
			DraftStore:    draftStore,
			SignupUsecase: signupUsecase,
			Storage:       storage,
			Log:           logger,
			tokenSecret:   tokenSecret,
			tokenExpHours: tokenExpHours,
		}
	})
	return wizardUsecaseInstance
}

func (uc *wizardUsecase) Begin(ctx context.Context) (*responses.WizardSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.Begin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft := models.EmptyDraft(utils.GenerateDraftID())
	if err := uc.DraftStore.Save(ctx, draft); err != nil {
		return nil, err
	}

	token, err := utils.GenerateWizardToken(draft.ID, uc.tokenSecret, uc.tokenExpHours)
	if err != nil {
		return nil, err
	}

	return &responses.WizardSession{
		DraftID: draft.ID,
		Token:   token,
		State:   string(draft.State),
		Step:    draft.State.StepNumber(),
	}, nil
}

func (uc *wizardUsecase) Status(ctx context.Context, draftID string) (*responses.WizardStatus, error) {
	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return responses.NewWizardStatus(draft), nil
}

// SelectRole sets or changes the draft's role. Changing to a different role
// resets everything entered for the old one; re-selecting the same role keeps
// the data.
func (uc *wizardUsecase) SelectRole(ctx context.Context, draftID string, request *requests.SelectRole) (*responses.WizardStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.SelectRole called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)

	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.StateRoleSelect {
		return nil, exceptions.ErrIllegalTransition(string(draft.State), string(models.StateBasicInfo))
	}

	role := models.Role(request.Role)
	if draft.Role != models.RoleUnset && draft.Role != role {
		draft.Patient = nil
		draft.Clinic = nil
	}
	draft.Role = role
	draft.State = models.StateBasicInfo

	if err := uc.DraftStore.Save(ctx, draft); err != nil {
		return nil, err
	}
	return responses.NewWizardStatus(draft), nil
}

func (uc *wizardUsecase) SubmitBasicInfo(ctx context.Context, draftID string, request *requests.BasicInfo) (*responses.WizardStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.SubmitBasicInfo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.StateBasicInfo {
		return nil, exceptions.ErrIllegalTransition(string(draft.State), string(models.StateAdvancedInfo))
	}

	switch draft.Role {
	case models.RolePatient:
		if request.Patient == nil {
			return nil, exceptions.ErrRoleMismatch()
		}
		mergePatientBasicInfo(draft, request.Patient)
	case models.RoleClinic:
		if request.Clinic == nil {
			return nil, exceptions.ErrRoleMismatch()
		}
		mergeClinicBasicInfo(draft, request.Clinic)
	default:
		return nil, exceptions.ErrRoleNotSelected()
	}

	draft.State = models.StateAdvancedInfo
	if err := uc.DraftStore.Save(ctx, draft); err != nil {
		return nil, err
	}
	return responses.NewWizardStatus(draft), nil
}

func (uc *wizardUsecase) SubmitAdvancedInfo(ctx context.Context, draftID string, request *requests.AdvancedInfo) (*responses.WizardStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.SubmitAdvancedInfo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.State != models.StateAdvancedInfo && draft.State != models.StateFailed {
		return nil, exceptions.ErrIllegalTransition(string(draft.State), string(models.StateAdvancedInfo))
	}

	switch draft.Role {
	case models.RolePatient:
		if request.Patient == nil {
			return nil, exceptions.ErrRoleMismatch()
		}
		mergePatientAdvancedInfo(draft, request.Patient)
	case models.RoleClinic:
		if request.Clinic == nil {
			return nil, exceptions.ErrRoleMismatch()
		}
		mergeClinicAdvancedInfo(draft, request.Clinic)
	default:
		return nil, exceptions.ErrRoleNotSelected()
	}

	draft.State = models.StateAdvancedInfo
	if err := uc.DraftStore.Save(ctx, draft); err != nil {
		return nil, err
	}
	return responses.NewWizardStatus(draft), nil
}

// Back retreats one step. Entered data is kept; retreating never discards.
func (uc *wizardUsecase) Back(ctx context.Context, draftID string) (*responses.WizardStatus, error) {
	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}

	previous, ok := previousState[draft.State]
	if !ok {
		return nil, exceptions.ErrIllegalTransition(string(draft.State), "back")
	}

	draft.State = previous
	if err := uc.DraftStore.Save(ctx, draft); err != nil {
		return nil, err
	}
	return responses.NewWizardStatus(draft), nil
}

// Exit abandons the flow: the draft and any staged files are dropped.
func (uc *wizardUsecase) Exit(ctx context.Context, draftID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.Exit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("draft_id", draftID),
	)

	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return err
	}

	if draft.Clinic != nil {
		refs := make([]string, 0, 2)
		if draft.Clinic.LogoRef != "" {
			refs = append(refs, draft.Clinic.LogoRef)
		}
		if draft.Clinic.VerificationDocumentRef != "" {
			refs = append(refs, draft.Clinic.VerificationDocumentRef)
		}
		if len(refs) > 0 {
			if err := uc.Storage.Release(ctx, refs...); err != nil {
				uc.Log.Error("wizardUsecase.Exit staged file release failed",
					zap.String("draft_id", draftID),
					zap.Error(err),
				)
			}
		}
	}

	return uc.DraftStore.Clear(ctx, draftID)
}

func (uc *wizardUsecase) Submit(ctx context.Context, draftID string) (*responses.SubmissionOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("wizardUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("draft_id", draftID),
	)

	draft, err := uc.DraftStore.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !canTransition(draft.State, models.StateSubmitting) {
		return nil, exceptions.ErrIllegalTransition(string(draft.State), string(models.StateSubmitting))
	}

	draft.State = models.StateSubmitting
	outcome, err := uc.SignupUsecase.Submit(ctx, draft)
	if err != nil {
		// The draft survives intact for retry; only the state marks the
		// failed run.
		draft.State = models.StateFailed
		if saveErr := uc.DraftStore.Save(ctx, draft); saveErr != nil {
			uc.Log.Error("wizardUsecase.Submit failed-state save failed",
				zap.String("draft_id", draftID),
				zap.Error(saveErr),
			)
		}
		return nil, err
	}

	if err := uc.DraftStore.Clear(ctx, draftID); err != nil {
		uc.Log.Error("wizardUsecase.Submit draft clear failed",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
	}

	uc.Log.Info("wizardUsecase.Submit succeeded",
		zap.String("draft_id", draftID),
	)
	return outcome, nil
}
