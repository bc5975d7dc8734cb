package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/exceptions"
	"tutorat-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type TimeSlotController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	Location       *time.Location
}

func NewTimeSlotController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, location *time.Location) *TimeSlotController {
	return &TimeSlotController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		Location:       location,
	}
}

// FindFreeWindows lists free windows of one duration, or of every duration when none is given.
func (ctrl *TimeSlotController) FindFreeWindows(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get(constvars.URLQueryParamDate)
	if rawDate == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLQueryParamDate))
		return
	}

	date, err := utils.ParseDate(rawDate, ctrl.Location)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	rawDuration := r.URL.Query().Get(constvars.URLQueryParamDuration)
	if rawDuration == "" {
		response, err := ctrl.BookingUsecase.FreeWindowsAnyDuration(ctx, date)
		if err != nil {
			ctrl.handleUsecaseError(w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSlotsSuccessMessage, response)
		return
	}

	duration, err := models.ParseDurationLabel(rawDuration)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDurationLabel(err, rawDuration))
		return
	}

	response, err := ctrl.BookingUsecase.FreeWindows(ctx, date, duration)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimeSlotsSuccessMessage, response)
}

func (ctrl *TimeSlotController) handleUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
