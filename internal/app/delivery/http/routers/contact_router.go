package routers

import (
	"mediflow-onboarding/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachContactRoutes(router chi.Router, contactController *controllers.ContactController) {
	router.Post("/messages", contactController.SendMessage)
}
