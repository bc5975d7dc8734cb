package routers

import (
	"tutorat-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTimeSlotRoutes(router chi.Router, timeSlotController *controllers.TimeSlotController) {
	router.Get("/", timeSlotController.FindFreeWindows)
}
