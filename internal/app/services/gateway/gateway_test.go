package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAuthGatewayForTest(baseUrl string) *authGateway {
	return &authGateway{
		BaseUrl:    baseUrl + "/api/auth",
		HTTPClient: newUpstreamHTTPClient(5),
		Log:        zap.NewNop(),
	}
}

func newProfileGatewayForTest(baseUrl string) *profileGateway {
	return &profileGateway{
		BaseUrl:    baseUrl + "/api/profile",
		HTTPClient: newUpstreamHTTPClient(5),
		Log:        zap.NewNop(),
	}
}

func TestAuthGateway_RegisterAccount(t *testing.T) {
	t.Run("returns the created account on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/register", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"user":{"_id":"acc-1","name":"Ada","email":"ada@example.com","role":"patient"}}`))
		}))
		defer server.Close()

		account, err := newAuthGatewayForTest(server.URL).RegisterAccount(context.Background(), &requests.RegisterAccount{
			Name: "Ada", Email: "ada@example.com", Password: "Aa1!aaaa", Role: "patient",
		})

		assert.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID)
	})

	t.Run("maps a duplicate email onto its own error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":false,"message":"email already exists"}`))
		}))
		defer server.Close()

		_, err := newAuthGatewayForTest(server.URL).RegisterAccount(context.Background(), &requests.RegisterAccount{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrEmailAlreadyExists().ClientMessage, customErr.ClientMessage)
	})

	t.Run("flags a missing user id as a decode failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		_, err := newAuthGatewayForTest(server.URL).RegisterAccount(context.Background(), &requests.RegisterAccount{})
		assert.Error(t, err)
	})

	t.Run("distinguishes transport failure from server rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newAuthGatewayForTest(server.URL).RegisterAccount(context.Background(), &requests.RegisterAccount{})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrSendHTTPRequest(nil).ClientMessage, customErr.ClientMessage)
	})
}

func TestAuthGateway_DeleteAccount(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	err := newAuthGatewayForTest(server.URL).DeleteAccount(context.Background(), "acc-9")

	assert.NoError(t, err)
	assert.Equal(t, "/api/auth/delete-auth-user/acc-9", gotPath)
}

func TestProfileGateway_CreateClinicProfile(t *testing.T) {
	t.Run("sends the data blob and file parts as multipart", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseMultipartForm(10<<20))
			assert.Contains(t, r.MultipartForm.Value["data"][0], `"clinicName":"Sunrise Clinic"`)

			_, logoHeader, err := r.FormFile("logo")
			assert.NoError(t, err)
			assert.Equal(t, "logo.png", logoHeader.Filename)

			_, docHeader, err := r.FormFile("verificationDocument")
			assert.NoError(t, err)
			assert.Equal(t, "license.pdf", docHeader.Filename)

			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		err := newProfileGatewayForTest(server.URL).CreateClinicProfile(context.Background(), &requests.ClinicProfileCreation{
			Data: &requests.ClinicProfileData{UserRef: "acc-1", ClinicName: "Sunrise Clinic"},
			Logo: &requests.FilePart{
				FieldName: "logo", FileName: "logo.png", ContentType: "image/png",
				Reader: strings.NewReader("png-bytes"),
			},
			VerificationDocument: &requests.FilePart{
				FieldName: "verificationDocument", FileName: "license.pdf", ContentType: "application/pdf",
				Reader: strings.NewReader("pdf-bytes"),
			},
		})

		assert.NoError(t, err)
	})

	t.Run("maps isRegExist onto the registration-number error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"isRegExist":true}`))
		}))
		defer server.Close()

		err := newProfileGatewayForTest(server.URL).CreateClinicProfile(context.Background(), &requests.ClinicProfileCreation{
			Data:                 &requests.ClinicProfileData{},
			VerificationDocument: &requests.FilePart{FieldName: "verificationDocument", FileName: "doc.pdf", Reader: strings.NewReader("x")},
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.ErrRegNumberAlreadyExists().ClientMessage, customErr.ClientMessage)
	})
}
