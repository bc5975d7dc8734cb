package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/exceptions"
	"tutorat-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	Location       *time.Location
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, location *time.Location) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		Location:       location,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBooking)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	if !result.Success {
		utils.BuildBookingResultResponse(w, constvars.StatusConflict, result)
		return
	}
	utils.BuildBookingResultResponse(w, constvars.StatusCreated, result)
}

func (ctrl *BookingController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CheckAvailability)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	start, err := utils.ParseDateTime(request.StartTime, ctrl.Location)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(err))
		return
	}
	end := start.Add(models.DurationLabel(request.Duration).Duration())

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CheckOverlap(ctx, start, end)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckAvailabilitySuccessMessage, response)
}

func (ctrl *BookingController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindAll(ctx)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, response)
}

func (ctrl *BookingController) FindByID(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := ctrl.bookingIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindByID(ctx, bookingID)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, response)
}

func (ctrl *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := ctrl.bookingIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CancelBooking(ctx, bookingID)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelBookingSuccessMessage, response)
}

func (ctrl *BookingController) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := ctrl.bookingIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.AppControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CompleteBooking(ctx, bookingID)
	if err != nil {
		ctrl.handleUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteBookingSuccessMessage, response)
}

func (ctrl *BookingController) bookingIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	if err := utils.ValidateUrlParamID(bookingID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamBookingID))
		return "", false
	}
	return bookingID, true
}

func (ctrl *BookingController) handleUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
