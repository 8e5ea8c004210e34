package routers

import (
	"class-planner-service/internal/app/delivery/http/controllers"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachWizardRoutes(router chi.Router, middlewares *middlewares.Middlewares, wizardController *controllers.WizardController, generateLimitPerMinute int) {
	router.Use(middlewares.RequireSession)

	router.Get("/", wizardController.GetSession)
	router.Delete("/", wizardController.DeleteSession)

	router.Post("/next", wizardController.Next)
	router.Post("/previous", wizardController.Previous)
	router.With(middlewares.SessionRateLimit(generateLimitPerMinute, time.Minute)).Post("/generate", wizardController.Generate)

	router.Route("/courses", func(r chi.Router) {
		r.Post("/", wizardController.AddCourse)
		r.Patch("/{index}", wizardController.UpdateCourse)
		r.Delete("/{index}", wizardController.RemoveCourse)
	})

	router.Route("/breaks", func(r chi.Router) {
		r.Post("/", wizardController.AddBreak)
		r.Patch("/{index}", wizardController.UpdateBreak)
		r.Delete("/{index}", wizardController.RemoveBreak)
	})

	router.Route("/preferences", func(r chi.Router) {
		r.Post("/days/{day}", wizardController.ToggleDay)
		r.Put("/time-of-day", wizardController.SetTimeOfDay)
		r.Put("/weights", wizardController.SetWeights)
	})
}
