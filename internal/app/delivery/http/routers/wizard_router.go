package routers

import (
	"mediflow-onboarding/internal/app/delivery/http/controllers"
	"mediflow-onboarding/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWizardRoutes(router chi.Router, middlewares *middlewares.Middlewares, wizardController *controllers.WizardController) {
	router.Post("/", wizardController.Begin)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.WizardSession)
		r.Get("/", wizardController.Status)
		r.Post("/role", wizardController.SelectRole)
		r.Post("/basic-info", wizardController.SubmitBasicInfo)
		r.Post("/advanced-info", wizardController.SubmitAdvancedInfo)
		r.Post("/back", wizardController.Back)
		r.Post("/documents", wizardController.StageDocument)
		r.Post("/submit", wizardController.Submit)
		r.Delete("/", wizardController.Exit)
	})
}
