package gateway

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
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
	profileGatewayInstance contracts.ProfileGateway
	onceProfileGateway     sync.Once
)

type profileGateway struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewProfileGateway(baseUrl string, timeoutInSeconds int, logger *zap.Logger) contracts.ProfileGateway {
	onceProfileGateway.Do(func() {
		profileGatewayInstance = &profileGateway{
			BaseUrl:    baseUrl + "/api/profile",
			HTTPClient: newUpstreamHTTPClient(timeoutInSeconds),
			Log:        logger,
		}
	})
	return profileGatewayInstance
}

func (c *profileGateway) CreatePatientProfile(ctx context.Context, request *requests.PatientProfileCreation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileGateway.CreatePatientProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/patient-profile-creation", bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("profileGateway.CreatePatientProfile error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	_, err = decodeEnvelope(resp)
	return err
}

func (c *profileGateway) CreateClinicProfile(ctx context.Context, request *requests.ClinicProfileCreation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileGateway.CreateClinicProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	dataJSON, err := json.Marshal(request.Data)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := writer.WriteField("data", string(dataJSON)); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	if err := c.writeFilePart(writer, request.Logo); err != nil {
		return err
	}
	if err := c.writeFilePart(writer, request.VerificationDocument); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/clinic-profile-creation", &body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("profileGateway.CreateClinicProfile error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	_, err = decodeEnvelope(resp)
	return err
}

func (c *profileGateway) writeFilePart(writer *multipart.Writer, part *requests.FilePart) error {
	if part == nil {
		return nil
	}
	formFile, err := writer.CreateFormFile(part.FieldName, part.FileName)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := io.Copy(formFile, part.Reader); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	return nil
}
