package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"tutorat-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Transient     bool       `json:"transient,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err and records the caller of the exported
// constructor. Wrapping an existing CustomError keeps its status and client
// message and appends the new location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		existing.Locations = append(existing.Locations, location)
		return existing
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		cause:         err,
	}
}

func buildTransientError(err error, devMessage string) *CustomError {
	customErr := BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientBookingTemporarilyUnavailable, devMessage)
	customErr.Transient = true
	return customErr
}

// IsTransient reports whether the caller may retry the whole request.
func IsTransient(err error) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Transient
	}
	return false
}

// HasStatusCode reports whether err is a CustomError carrying statusCode.
func HasStatusCode(err error, statusCode int) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode == statusCode
	}
	return false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
