package routers

import (
	"class-planner-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, catalogController *controllers.CatalogController) {
	router.Get("/subjects", catalogController.SearchSubjects)
	router.Get("/subjects/{subject}/courses", catalogController.CourseNumbers)
}
