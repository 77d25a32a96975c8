package password

import (
	"context"
	"testing"
	"time"

	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) GetBytes(ctx context.Context, key string) ([]byte, error) {
	return []byte(f.data[key]), nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) SetBytes(ctx context.Context, key string, value []byte, exp time.Duration) error {
	f.data[key] = string(value)
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	return 1, nil
}

type mockAuthGateway struct{ mock.Mock }

func (m *mockAuthGateway) RegisterAccount(ctx context.Context, request *requests.RegisterAccount) (*models.Account, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAuthGateway) SendOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthGateway) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *mockAuthGateway) SendResetOTP(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthGateway) VerifyResetOTP(ctx context.Context, email, otp string) error {
	return m.Called(ctx, email, otp).Error(0)
}

func (m *mockAuthGateway) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	return m.Called(ctx, request).Error(0)
}

func newUsecaseForTest(auth *mockAuthGateway, redis *fakeRedisRepository, now time.Time) *passwordUsecase {
	return &passwordUsecase{
		AuthGateway:     auth,
		RedisRepository: redis,
		Log:             zap.NewNop(),
		windowSeconds:   180,
		resendQuota:     3,
		now:             func() time.Time { return now },
	}
}

func TestPasswordUsecase_Start(t *testing.T) {
	t.Run("opens a full countdown window", func(t *testing.T) {
		auth := new(mockAuthGateway)
		auth.On("SendResetOTP", mock.Anything, "ada@example.com").Return(nil)
		uc := newUsecaseForTest(auth, newFakeRedisRepository(), time.Unix(1000, 0))

		status, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, models.PasswordStepVerify, status.Step)
		assert.Equal(t, 180, status.RemainingSeconds)
	})

	t.Run("rejected while a window is still running", func(t *testing.T) {
		auth := new(mockAuthGateway)
		auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
		redis := newFakeRedisRepository()
		uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))

		_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
		assert.NoError(t, err)

		_, err = uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
		assert.Error(t, err)
		auth.AssertNumberOfCalls(t, "SendResetOTP", 1)
	})

	t.Run("gateway failure leaves no flow state", func(t *testing.T) {
		auth := new(mockAuthGateway)
		auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(exceptions.ErrUpstreamRejected("unknown email"))
		redis := newFakeRedisRepository()
		uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))

		_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})

		assert.Error(t, err)
		assert.Empty(t, redis.data)
	})
}

func TestPasswordUsecase_CountdownSurvivesReload(t *testing.T) {
	auth := new(mockAuthGateway)
	auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
	redis := newFakeRedisRepository()

	uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))
	_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
	assert.NoError(t, err)

	// A later status check against the same persisted state, 50s in.
	later := newUsecaseForTest(auth, redis, time.Unix(1050, 0))
	status, err := later.Status(context.Background(), "ada@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 130, status.RemainingSeconds)
}

func TestPasswordUsecase_RemainingClampsAtZero(t *testing.T) {
	auth := new(mockAuthGateway)
	auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
	redis := newFakeRedisRepository()

	uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))
	_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
	assert.NoError(t, err)

	// 200s elapsed against a 180s window.
	later := newUsecaseForTest(auth, redis, time.Unix(1200, 0))
	status, err := later.Status(context.Background(), "ada@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 0, status.RemainingSeconds)
}

func TestPasswordUsecase_VerifyAdvancesToReset(t *testing.T) {
	auth := new(mockAuthGateway)
	auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
	auth.On("VerifyResetOTP", mock.Anything, "ada@example.com", "123456").Return(nil)
	redis := newFakeRedisRepository()
	uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))

	_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
	assert.NoError(t, err)

	status, err := uc.Verify(context.Background(), &requests.VerifyResetOTP{Email: "ada@example.com", OTP: "123456"})

	assert.NoError(t, err)
	assert.Equal(t, models.PasswordStepReset, status.Step)
}

func TestPasswordUsecase_VerifyWithoutFlow(t *testing.T) {
	uc := newUsecaseForTest(new(mockAuthGateway), newFakeRedisRepository(), time.Unix(1000, 0))

	_, err := uc.Verify(context.Background(), &requests.VerifyResetOTP{Email: "ada@example.com", OTP: "123456"})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, exceptions.ErrResetFlowNotFound().ClientMessage, customErr.ClientMessage)
}

func TestPasswordUsecase_ResetClearsFlow(t *testing.T) {
	auth := new(mockAuthGateway)
	auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
	auth.On("VerifyResetOTP", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	auth.On("ResetPassword", mock.Anything, mock.Anything).Return(nil)
	redis := newFakeRedisRepository()
	uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))

	_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
	assert.NoError(t, err)
	_, err = uc.Verify(context.Background(), &requests.VerifyResetOTP{Email: "ada@example.com", OTP: "123456"})
	assert.NoError(t, err)

	err = uc.Reset(context.Background(), &requests.ResetPassword{
		Email: "ada@example.com", OTP: "123456",
		NewPassword: "Aa1!aaaa", NewPasswordConfirmation: "Aa1!aaaa",
	})

	assert.NoError(t, err)
	assert.Empty(t, redis.data)
}

func TestPasswordUsecase_ResetBeforeVerify(t *testing.T) {
	auth := new(mockAuthGateway)
	auth.On("SendResetOTP", mock.Anything, mock.Anything).Return(nil)
	redis := newFakeRedisRepository()
	uc := newUsecaseForTest(auth, redis, time.Unix(1000, 0))

	_, err := uc.Start(context.Background(), &requests.ForgotPassword{Email: "ada@example.com"})
	assert.NoError(t, err)

	err = uc.Reset(context.Background(), &requests.ResetPassword{
		Email: "ada@example.com", OTP: "123456",
		NewPassword: "Aa1!aaaa", NewPasswordConfirmation: "Aa1!aaaa",
	})

	assert.Error(t, err)
	auth.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything)
}
