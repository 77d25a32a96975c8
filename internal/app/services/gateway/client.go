package gateway

import (
	"io"
	"net/http"
	"strings"
	"time"

	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// upstreamEnvelope is the response shape shared by every upstream endpoint.
// Register additionally returns the created account; clinic profile creation
// flags registration-number collisions.
type upstreamEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	User       *models.Account `json:"user,omitempty"`
	IsRegExist bool            `json:"isRegExist,omitempty"`
}

func newUpstreamHTTPClient(timeoutInSeconds int) *http.Client {
	return &http.Client{Timeout: time.Duration(timeoutInSeconds) * time.Second}
}

// decodeEnvelope reads the response body and maps failures onto typed errors.
// Transport failures never reach here; the caller wraps those separately so
// "no response" and "server said no" stay distinguishable.
func decodeEnvelope(resp *http.Response) (*upstreamEnvelope, error) {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err)
	}

	var envelope upstreamEnvelope
	if len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			return nil, exceptions.ErrDecodeResponse(err)
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && envelope.Success {
		return &envelope, nil
	}

	if envelope.IsRegExist {
		return nil, exceptions.ErrRegNumberAlreadyExists()
	}
	if isEmailConflict(resp.StatusCode, envelope.Message) {
		return nil, exceptions.ErrEmailAlreadyExists()
	}
	return nil, exceptions.ErrUpstreamRejected(envelope.Message)
}

func isEmailConflict(statusCode int, message string) bool {
	lowered := strings.ToLower(message)
	if statusCode == http.StatusConflict && strings.Contains(lowered, "email") {
		return true
	}
	return strings.Contains(lowered, "email") && strings.Contains(lowered, "exist")
}
