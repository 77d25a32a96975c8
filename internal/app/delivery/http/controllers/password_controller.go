package controllers

import (
	"context"
	"net/http"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PasswordController struct {
	Log             *zap.Logger
	PasswordUsecase contracts.PasswordUsecase
}

func NewPasswordController(logger *zap.Logger, passwordUsecase contracts.PasswordUsecase) *PasswordController {
	return &PasswordController{
		Log:             logger,
		PasswordUsecase: passwordUsecase,
	}
}

func (ctrl *PasswordController) Start(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgotPassword)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeForgotPasswordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.PasswordUsecase.Start(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetOTPSentSuccessMessage, status)
}

func (ctrl *PasswordController) Resend(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ForgotPassword)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeForgotPasswordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.PasswordUsecase.Resend(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetOTPSentSuccessMessage, status)
}

func (ctrl *PasswordController) Status(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !utils.IsValidEmail(email) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.PasswordUsecase.Status(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetOTPStatusSuccessMessage, status)
}

func (ctrl *PasswordController) Verify(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VerifyResetOTP)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeVerifyResetOTPRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.PasswordUsecase.Verify(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetOTPVerifiedSuccess, status)
}

func (ctrl *PasswordController) Reset(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResetPassword)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeResetPasswordRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.PasswordUsecase.Reset(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordResetSuccessMessage, nil)
}
