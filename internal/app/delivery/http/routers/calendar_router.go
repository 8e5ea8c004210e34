package routers

import (
	"class-planner-service/internal/app/delivery/http/controllers"
	"class-planner-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCalendarRoutes(router chi.Router, middlewares *middlewares.Middlewares, calendarController *controllers.CalendarController) {
	router.Use(middlewares.RequireSession)

	router.Get("/", calendarController.GetCalendar)
	router.Post("/schedules/{index}", calendarController.ActivateSchedule)
	router.Post("/events/{index}/select", calendarController.SelectEvent)
	router.Delete("/selection", calendarController.DismissSelection)
	router.Post("/export", calendarController.Export)
	router.Post("/email", calendarController.Email)
}
