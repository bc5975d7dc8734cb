package routers

import (
	"fmt"
	"tutorat-service/internal/app/delivery/http/controllers"
	"tutorat-service/internal/app/delivery/http/middlewares"
	"tutorat-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	bookingIDPath := fmt.Sprintf("/{%s}", constvars.URLParamBookingID)

	router.Post("/", bookingController.CreateBooking)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSuperadminAPIKey)
		r.Get("/", bookingController.FindAll)
		r.Get(bookingIDPath, bookingController.FindByID)
		r.Delete(bookingIDPath, bookingController.CancelBooking)
		r.Post(bookingIDPath+"/complete", bookingController.CompleteBooking)
	})
}

func attachAvailabilityRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CheckAvailability)
}
