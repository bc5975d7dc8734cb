package routers

import (
	"fmt"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/delivery/http/controllers"
	"tutorat-service/internal/app/delivery/http/middlewares"
	"tutorat-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	bookingController *controllers.BookingController,
	timeSlotController *controllers.TimeSlotController,
	pricingController *controllers.PricingController,
	healthController *controllers.HealthController,
) {
	allowedOrigins := []string{"*"}
	if internalConfig.App.FrontendDomain != "" {
		allowedOrigins = []string{internalConfig.App.FrontendDomain}
	}

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderAPIKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	if internalConfig.App.MaxRequests > 0 {
		router.Use(middlewares.RateLimiter())
	}
	if internalConfig.App.RequestBodyLimitInMegabyte > 0 {
		router.Use(middleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/time-slots", func(r chi.Router) {
				attachTimeSlotRoutes(r, timeSlotController)
			})

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, bookingController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/pricing", func(r chi.Router) {
				attachPricingRoutes(r, pricingController)
			})

			r.Get("/healthz", healthController.Health)
		})
	})
}
