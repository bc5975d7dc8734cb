package routers

import (
	"tutorat-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPricingRoutes(router chi.Router, pricingController *controllers.PricingController) {
	router.Get("/", pricingController.GetPricing)
}
