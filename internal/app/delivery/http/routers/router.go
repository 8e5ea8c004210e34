package routers

import (
	"class-planner-service/internal/app/config"
	"class-planner-service/internal/app/delivery/http/controllers"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	wizardController *controllers.WizardController,
	calendarController *controllers.CalendarController,
	generationLogController *controllers.GenerationLogController,
	catalogController *controllers.CatalogController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, wizardController)
			})

			r.Route("/wizard", func(r chi.Router) {
				attachWizardRoutes(r, middlewares, wizardController, internalConfig.ScheduleGenerator.SessionMaxRequestsPerMinute)
			})

			r.Route("/calendar", func(r chi.Router) {
				attachCalendarRoutes(r, middlewares, calendarController)
			})

			r.Route("/generations", func(r chi.Router) {
				attachGenerationLogRoutes(r, middlewares, generationLogController)
			})

			r.Route("/catalog", func(r chi.Router) {
				attachCatalogRoutes(r, catalogController)
			})
		})
	})
}
