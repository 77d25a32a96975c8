package password

import (
	"context"
	"sync"
	"time"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/app/services/shared/ratelimiter"
	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/dto/responses"
	"mediflow-onboarding/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	passwordUsecaseInstance contracts.PasswordUsecase
	oncePasswordUsecase     sync.Once
)

type passwordUsecase struct {
	AuthGateway     contracts.AuthGateway
	RedisRepository contracts.RedisRepository
	Limiter         *ratelimiter.Limiter
	Log             *zap.Logger
	windowSeconds   int
	resendQuota     int
	now             func() time.Time
}

func NewPasswordUsecase(
	authGateway contracts.AuthGateway,
	redisRepository contracts.RedisRepository,
	limiter *ratelimiter.Limiter,
	logger *zap.Logger,
	windowSeconds int,
	resendQuota int,
) contracts.PasswordUsecase {
	oncePasswordUsecase.Do(func() {
		passwordUsecaseInstance = &passwordUsecase{
			AuthGateway:     authGateway,
			RedisRepository: redisRepository,
			Limiter:         limiter,
			Log:             logger,
			windowSeconds:   windowSeconds,
			resendQuota:     resendQuota,
			now:             time.Now,
		}
	})
	return passwordUsecaseInstance
}

// Start requests an OTP and opens the countdown window. Calling it again
// while a window is running is rejected so the countdown cannot be reset by
// a reload.
func (uc *passwordUsecase) Start(ctx context.Context, request *requests.ForgotPassword) (*responses.ResetStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("passwordUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	flow, err := uc.loadFlow(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if flow != nil && flow.Step == models.PasswordStepVerify {
		if remaining := uc.remainingSeconds(flow); remaining > 0 {
			return nil, exceptions.ErrResetWindowActive(remaining)
		}
	}

	if err := uc.AuthGateway.SendResetOTP(ctx, request.Email); err != nil {
		return nil, err
	}

	flow = &models.PasswordFlow{
		Step:            models.PasswordStepVerify,
		Email:           request.Email,
		WindowStartedAt: uc.now().Unix(),
	}
	if err := uc.saveFlow(ctx, flow); err != nil {
		return nil, err
	}
	return uc.statusOf(flow), nil
}

// Resend re-dispatches the OTP once the window has lapsed, guarded by a
// fixed-window quota per email.
func (uc *passwordUsecase) Resend(ctx context.Context, request *requests.ForgotPassword) (*responses.ResetStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("passwordUsecase.Resend called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	flow, err := uc.loadFlow(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, exceptions.ErrResetFlowNotFound()
	}
	if remaining := uc.remainingSeconds(flow); remaining > 0 {
		return nil, exceptions.ErrResetWindowActive(remaining)
	}

	allowed, _, err := uc.Limiter.Allow(ctx,
		constvars.RedisKeyResendLimitGroup,
		request.Email,
		time.Hour,
		uc.resendQuota,
		uc.now(),
	)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, exceptions.ErrResetWindowActive(uc.windowSeconds)
	}

	if err := uc.AuthGateway.SendResetOTP(ctx, request.Email); err != nil {
		return nil, err
	}

	flow.Step = models.PasswordStepVerify
	flow.WindowStartedAt = uc.now().Unix()
	if err := uc.saveFlow(ctx, flow); err != nil {
		return nil, err
	}
	return uc.statusOf(flow), nil
}

func (uc *passwordUsecase) Status(ctx context.Context, email string) (*responses.ResetStatus, error) {
	flow, err := uc.loadFlow(ctx, email)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, exceptions.ErrResetFlowNotFound()
	}
	return uc.statusOf(flow), nil
}

func (uc *passwordUsecase) Verify(ctx context.Context, request *requests.VerifyResetOTP) (*responses.ResetStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("passwordUsecase.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	flow, err := uc.loadFlow(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if flow == nil || flow.Step < models.PasswordStepVerify {
		return nil, exceptions.ErrResetFlowNotFound()
	}

	if err := uc.AuthGateway.VerifyResetOTP(ctx, request.Email, request.OTP); err != nil {
		return nil, err
	}

	flow.Step = models.PasswordStepReset
	if err := uc.saveFlow(ctx, flow); err != nil {
		return nil, err
	}
	return uc.statusOf(flow), nil
}

// Reset sets the new password and closes the flow. Flow state is cleared even
// though the upstream call already succeeded; a stale record would only
// confuse the countdown on a later reset.
func (uc *passwordUsecase) Reset(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("passwordUsecase.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	flow, err := uc.loadFlow(ctx, request.Email)
	if err != nil {
		return err
	}
	if flow == nil || flow.Step < models.PasswordStepReset {
		return exceptions.ErrResetFlowNotFound()
	}

	if err := uc.AuthGateway.ResetPassword(ctx, request); err != nil {
		return err
	}

	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPasswordPrefix+request.Email); err != nil {
		uc.Log.Error("passwordUsecase.Reset flow cleanup failed",
			zap.Error(err),
		)
	}
	return nil
}

func (uc *passwordUsecase) loadFlow(ctx context.Context, email string) (*models.PasswordFlow, error) {
	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPasswordPrefix+email)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var flow models.PasswordFlow
	if err := json.Unmarshal([]byte(raw), &flow); err != nil {
		// Malformed state is treated as absent, same policy as drafts.
		uc.Log.Warn("passwordUsecase stored flow malformed, treated as absent",
			zap.Error(err),
		)
		return nil, nil
	}
	return &flow, nil
}

func (uc *passwordUsecase) saveFlow(ctx context.Context, flow *models.PasswordFlow) error {
	ttl := 24 * time.Hour
	return uc.RedisRepository.Set(ctx, constvars.RedisKeyPasswordPrefix+flow.Email, flow, ttl)
}

// remainingSeconds is clamped at zero: the countdown never reports a
// negative duration no matter how stale the stored timestamp is.
func (uc *passwordUsecase) remainingSeconds(flow *models.PasswordFlow) int {
	elapsed := int(uc.now().Unix() - flow.WindowStartedAt)
	remaining := uc.windowSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (uc *passwordUsecase) statusOf(flow *models.PasswordFlow) *responses.ResetStatus {
	return &responses.ResetStatus{
		Step:             flow.Step,
		Email:            flow.Email,
		RemainingSeconds: uc.remainingSeconds(flow),
	}
}
