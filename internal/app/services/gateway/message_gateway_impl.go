package gateway

import (
	"bytes"
	"context"
	"net/http"
	"sync"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	messageGatewayInstance contracts.MessageGateway
	onceMessageGateway     sync.Once
)

type messageGateway struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewMessageGateway(baseUrl string, timeoutInSeconds int, logger *zap.Logger) contracts.MessageGateway {
	onceMessageGateway.Do(func() {
		messageGatewayInstance = &messageGateway{
			BaseUrl:    baseUrl + "/api/message",
			HTTPClient: newUpstreamHTTPClient(timeoutInSeconds),
			Log:        logger,
		}
	})
	return messageGatewayInstance
}

func (c *messageGateway) SendMessage(ctx context.Context, request *requests.ContactMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("messageGateway.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/send-message", bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("messageGateway.SendMessage error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	_, err = decodeEnvelope(resp)
	return err
}
