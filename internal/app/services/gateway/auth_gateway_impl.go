package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authGatewayInstance contracts.AuthGateway
	onceAuthGateway     sync.Once
)

type authGateway struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewAuthGateway(baseUrl string, timeoutInSeconds int, logger *zap.Logger) contracts.AuthGateway {
	onceAuthGateway.Do(func() {
		authGatewayInstance = &authGateway{
			BaseUrl:    baseUrl + "/api/auth",
			HTTPClient: newUpstreamHTTPClient(timeoutInSeconds),
			Log:        logger,
		}
	})
	return authGatewayInstance
}

func (c *authGateway) RegisterAccount(ctx context.Context, request *requests.RegisterAccount) (*models.Account, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.RegisterAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	envelope, err := c.postJSON(ctx, "/register", request)
	if err != nil {
		c.Log.Error("authGateway.RegisterAccount upstream call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if envelope.User == nil || envelope.User.ID == "" {
		err := exceptions.ErrDecodeResponse(fmt.Errorf("register response missing user id"))
		c.Log.Error("authGateway.RegisterAccount malformed upstream response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return envelope.User, nil
}

func (c *authGateway) SendOTP(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.SendOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.postJSON(ctx, "/send-otp", map[string]string{"email": email})
	return err
}

// DeleteAccount is the compensating call. Callers treat its failure as
// best-effort; it reports the error and nothing more.
func (c *authGateway) DeleteAccount(ctx context.Context, accountID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.DeleteAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("account_id", accountID),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, c.BaseUrl+"/delete-auth-user/"+accountID, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	_, err = decodeEnvelope(resp)
	return err
}

func (c *authGateway) SendResetOTP(ctx context.Context, email string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.SendResetOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.postJSON(ctx, "/send-reset-otp", map[string]string{"email": email})
	return err
}

func (c *authGateway) VerifyResetOTP(ctx context.Context, email, otp string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.VerifyResetOTP called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.postJSON(ctx, "/verify-reset-otp", map[string]string{"email": email, "otp": otp})
	return err
}

func (c *authGateway) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authGateway.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.postJSON(ctx, "/reset-password", request)
	return err
}

func (c *authGateway) postJSON(ctx context.Context, path string, body interface{}) (*upstreamEnvelope, error) {
	requestJSON, err := json.Marshal(body)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+path, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp)
}
