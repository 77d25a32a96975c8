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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactController struct {
	Log          *zap.Logger
	ContactRelay contracts.ContactRelay
}

func NewContactController(logger *zap.Logger, contactRelay contracts.ContactRelay) *ContactController {
	return &ContactController{
		Log:          logger,
		ContactRelay: contactRelay,
	}
}

// SendMessage validates and enqueues. The caller gets an accepted response
// immediately; the relay worker owns delivery.
func (ctrl *ContactController) SendMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ContactMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeContactMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.ContactRelay.Publish(ctx, &requests.RelayedContactMessage{
		ID:         uuid.NewString(),
		Message:    *request,
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ContactMessageQueuedMessage, nil)
}
