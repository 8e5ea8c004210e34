package routers

import (
	"class-planner-service/internal/app/delivery/http/controllers"
	"class-planner-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachGenerationLogRoutes(router chi.Router, middlewares *middlewares.Middlewares, generationLogController *controllers.GenerationLogController) {
	router.Use(middlewares.RequireSession)

	router.Get("/", generationLogController.FindAll)
}
