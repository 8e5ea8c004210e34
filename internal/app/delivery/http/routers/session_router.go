package routers

import (
	"class-planner-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, wizardController *controllers.WizardController) {
	router.Post("/", wizardController.CreateSession)
}
