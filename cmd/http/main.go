package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediflow-onboarding/internal/app/config"
	"mediflow-onboarding/internal/app/delivery/http/controllers"
	"mediflow-onboarding/internal/app/delivery/http/middlewares"
	"mediflow-onboarding/internal/app/delivery/http/routers"
	"mediflow-onboarding/internal/app/drivers/database"
	"mediflow-onboarding/internal/app/drivers/logger"
	"mediflow-onboarding/internal/app/drivers/messaging"
	minioDriver "mediflow-onboarding/internal/app/drivers/storage"
	"mediflow-onboarding/internal/app/services/audit"
	"mediflow-onboarding/internal/app/services/drafts"
	"mediflow-onboarding/internal/app/services/gateway"
	"mediflow-onboarding/internal/app/services/notices"
	"mediflow-onboarding/internal/app/services/password"
	"mediflow-onboarding/internal/app/services/shared/ratelimiter"
	sharedRedis "mediflow-onboarding/internal/app/services/shared/redis"
	"mediflow-onboarding/internal/app/services/shared/relay"
	sharedStorage "mediflow-onboarding/internal/app/services/shared/storage"
	"mediflow-onboarding/internal/app/services/signup"
	"mediflow-onboarding/internal/app/services/wizard"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := minioDriver.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(&bootstrap); err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig

	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	storage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	limiter := ratelimiter.NewLimiter(redisRepository, bootstrap.Logger)

	// Upstream gateways
	authGateway := gateway.NewAuthGateway(internalConfig.Upstream.BaseUrl, internalConfig.Upstream.TimeoutInSeconds, bootstrap.Logger)
	profileGateway := gateway.NewProfileGateway(internalConfig.Upstream.BaseUrl, internalConfig.Upstream.TimeoutInSeconds, bootstrap.Logger)
	messageGateway := gateway.NewMessageGateway(internalConfig.Upstream.BaseUrl, internalConfig.Upstream.TimeoutInSeconds, bootstrap.Logger)

	// Drafts
	sealKey := utils.DeriveSealKey(internalConfig.App.DraftSealSecret)
	draftStore := drafts.NewDraftStore(redisRepository, bootstrap.Logger, sealKey, internalConfig.App.DraftTTLInHour)

	// Audit trail
	auditRepository := audit.NewAuditMongoRepository(bootstrap.MongoDB)

	// Signup + wizard
	signupUsecase := signup.NewSignupUsecase(authGateway, profileGateway, storage, auditRepository, bootstrap.Logger)
	wizardUsecase := wizard.NewWizardUsecase(
		draftStore,
		signupUsecase,
		storage,
		bootstrap.Logger,
		internalConfig.JWT.Secret,
		internalConfig.App.WizardTokenExpTimeInHour,
	)

	// Password flow
	passwordUsecase := password.NewPasswordUsecase(
		authGateway,
		redisRepository,
		limiter,
		bootstrap.Logger,
		internalConfig.App.ResetOTPWindowInSeconds,
		internalConfig.App.ResetOTPResendMaxPerWindow,
	)

	// Notices
	noticeBus := notices.NewNoticeBus(internalConfig.App.NoticeDefaultDurationInMS)
	bootstrap.NoticeBusStop = noticeBus.Stop

	// Contact relay
	relayService, err := relay.NewService(bootstrap.RabbitMQ, internalConfig.App.ContactQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	relayWorker := relay.NewWorker(bootstrap.Logger, relayService, messageGateway, internalConfig.App.ContactRelayMaxRetries)
	stopWorker, err := relayWorker.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.RelayWorkerStop = stopWorker

	// Delivery
	middlewareInstance := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: internalConfig,
	}
	wizardController := controllers.NewWizardController(bootstrap.Logger, wizardUsecase, storage, noticeBus, internalConfig.App.DocumentMaxUploadSizeInMB)
	passwordController := controllers.NewPasswordController(bootstrap.Logger, passwordUsecase)
	contactController := controllers.NewContactController(bootstrap.Logger, relayService)
	noticeController := controllers.NewNoticeController(bootstrap.Logger, noticeBus)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		wizardController,
		passwordController,
		contactController,
		noticeController,
	)

	return nil
}
