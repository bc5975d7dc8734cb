package controllers

import (
	"context"
	"net/http"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PricingController struct {
	Log            *zap.Logger
	PricingUsecase contracts.PricingUsecase
}

func NewPricingController(logger *zap.Logger, pricingUsecase contracts.PricingUsecase) *PricingController {
	return &PricingController{
		Log:            logger,
		PricingUsecase: pricingUsecase,
	}
}

func (ctrl *PricingController) GetPricing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	query := r.URL.Query()
	response, err := ctrl.PricingUsecase.GetPricing(ctx, query.Get(constvars.URLQueryParamGrade), query.Get(constvars.URLQueryParamLocation))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPricingSuccessMessage, response)
}
