package controllers

import (
	"net/http"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NoticeController struct {
	Log       *zap.Logger
	NoticeBus contracts.NoticeBus
}

func NewNoticeController(logger *zap.Logger, noticeBus contracts.NoticeBus) *NoticeController {
	return &NoticeController{
		Log:       logger,
		NoticeBus: noticeBus,
	}
}

type addNoticeRequest struct {
	Message    string `json:"message" validate:"required,max=500"`
	Kind       string `json:"kind" validate:"required,oneof=info success warning error"`
	DurationMS int    `json:"duration_ms" validate:"omitempty,gte=0,lte=60000"`
}

func (ctrl *NoticeController) Add(w http.ResponseWriter, r *http.Request) {
	request := new(addNoticeRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	noticeID := ctrl.NoticeBus.Add(
		draftIDFromContext(r),
		request.Message,
		models.NoticeKind(request.Kind),
		time.Duration(request.DurationMS)*time.Millisecond,
	)

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.NoticeListSuccessMessage, map[string]string{"id": noticeID})
}

func (ctrl *NoticeController) List(w http.ResponseWriter, r *http.Request) {
	notices := ctrl.NoticeBus.List(draftIDFromContext(r))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoticeListSuccessMessage, notices)
}

func (ctrl *NoticeController) Dismiss(w http.ResponseWriter, r *http.Request) {
	noticeID := chi.URLParam(r, "noticeID")
	ctrl.NoticeBus.Remove(draftIDFromContext(r), noticeID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoticeDismissedSuccessMessage, nil)
}
