package routers

import (
	"mediflow-onboarding/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPasswordRoutes(router chi.Router, passwordController *controllers.PasswordController) {
	router.Post("/forgot", passwordController.Start)
	router.Post("/forgot/resend", passwordController.Resend)
	router.Get("/forgot/status", passwordController.Status)
	router.Post("/forgot/verify", passwordController.Verify)
	router.Post("/reset", passwordController.Reset)
}
