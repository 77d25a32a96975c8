package controllers

import (
	"context"
	"net/http"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/dto/responses"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var allowedDocumentExtensions = []string{".pdf", ".jpg", ".jpeg", ".png"}

type WizardController struct {
	Log           *zap.Logger
	WizardUsecase contracts.WizardUsecase
	Storage       contracts.Storage
	NoticeBus     contracts.NoticeBus
	maxUploadMB   int64
}

func NewWizardController(logger *zap.Logger, wizardUsecase contracts.WizardUsecase, storage contracts.Storage, noticeBus contracts.NoticeBus, maxUploadMB int64) *WizardController {
	return &WizardController{
		Log:           logger,
		WizardUsecase: wizardUsecase,
		Storage:       storage,
		NoticeBus:     noticeBus,
		maxUploadMB:   maxUploadMB,
	}
}

func (ctrl *WizardController) Begin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := ctrl.WizardUsecase.Begin(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.WizardBeganSuccessMessage, session)
}

func (ctrl *WizardController) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.WizardUsecase.Status(ctx, draftIDFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStatusSuccessMessage, status)
}

func (ctrl *WizardController) SelectRole(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectRole)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeSelectRoleRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.WizardUsecase.SelectRole(ctx, draftIDFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStepSuccessMessage, status)
}

func (ctrl *WizardController) SubmitBasicInfo(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BasicInfo)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.Patient != nil && request.Clinic != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAmbiguousRoleVariant())
		return
	}
	if request.Patient != nil {
		utils.SanitizePatientBasicInfoRequest(request.Patient)
		if err := utils.ValidateStruct(request.Patient); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}
	if request.Clinic != nil {
		utils.SanitizeClinicBasicInfoRequest(request.Clinic)
		if err := utils.ValidateStruct(request.Clinic); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.WizardUsecase.SubmitBasicInfo(ctx, draftIDFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStepSuccessMessage, status)
}

func (ctrl *WizardController) SubmitAdvancedInfo(w http.ResponseWriter, r *http.Request) {
	request := new(requests.AdvancedInfo)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.Patient != nil && request.Clinic != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrAmbiguousRoleVariant())
		return
	}
	if request.Patient != nil {
		utils.SanitizePatientAdvancedInfoRequest(request.Patient)
		if err := utils.ValidateStruct(request.Patient); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}
	if request.Clinic != nil {
		utils.SanitizeClinicAdvancedInfoRequest(request.Clinic)
		if err := utils.ValidateStruct(request.Clinic); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.WizardUsecase.SubmitAdvancedInfo(ctx, draftIDFromContext(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardStepSuccessMessage, status)
}

func (ctrl *WizardController) Back(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.WizardUsecase.Back(ctx, draftIDFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardBackSuccessMessage, status)
}

func (ctrl *WizardController) Exit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.WizardUsecase.Exit(ctx, draftIDFromContext(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardExitSuccessMessage, nil)
}

// Submit runs the full remote sequence; its timeout is wider than the other
// endpoints since three upstream calls happen back to back.
func (ctrl *WizardController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	draftID := draftIDFromContext(r)
	outcome, err := ctrl.WizardUsecase.Submit(ctx, draftID)
	if err != nil {
		if customErr, ok := err.(*exceptions.CustomError); ok {
			ctrl.NoticeBus.Add(draftID, customErr.ClientMessage, models.NoticeError, 0)
		}
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.NoticeBus.Add(draftID, constvars.WizardSubmitSuccessMessage, models.NoticeSuccess, 0)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WizardSubmitSuccessMessage, outcome)
}

// StageDocument accepts a multipart upload and parks it in the staging area.
// The returned ref goes into the advanced-info payload.
func (ctrl *WizardController) StageDocument(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(ctrl.maxUploadMB << 20)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	err = utils.ValidateUploadFile(fileHeader, allowedDocumentExtensions, ctrl.maxUploadMB)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	staged, err := ctrl.Storage.Stage(ctx, draftIDFromContext(r), file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentStagedSuccessMessage, &responses.StagedUpload{
		Ref:      staged.Ref,
		FileName: staged.FileName,
		Size:     staged.Size,
	})
}

func draftIDFromContext(r *http.Request) string {
	draftID, _ := r.Context().Value(constvars.CONTEXT_DRAFT_ID_KEY).(string)
	return draftID
}
