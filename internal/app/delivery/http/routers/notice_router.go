package routers

import (
	"mediflow-onboarding/internal/app/delivery/http/controllers"
	"mediflow-onboarding/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachNoticeRoutes(router chi.Router, middlewares *middlewares.Middlewares, noticeController *controllers.NoticeController) {
	router.Use(middlewares.WizardSession)
	router.Get("/", noticeController.List)
	router.Post("/", noticeController.Add)
	router.Delete("/{noticeID}", noticeController.Dismiss)
}
