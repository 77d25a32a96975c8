package routers

import (
	"fmt"
	"time"

	"mediflow-onboarding/internal/app/config"
	"mediflow-onboarding/internal/app/delivery/http/controllers"
	"mediflow-onboarding/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	wizardController *controllers.WizardController,
	passwordController *controllers.PasswordController,
	contactController *controllers.ContactController,
	noticeController *controllers.NoticeController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-Wizard-Session"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/signup", func(r chi.Router) {
				attachWizardRoutes(r, middlewares, wizardController)
			})

			r.Route("/password", func(r chi.Router) {
				attachPasswordRoutes(r, passwordController)
			})

			r.Route("/contact", func(r chi.Router) {
				attachContactRoutes(r, contactController)
			})

			r.Route("/notices", func(r chi.Router) {
				attachNoticeRoutes(r, middlewares, noticeController)
			})
		})
	})
}
