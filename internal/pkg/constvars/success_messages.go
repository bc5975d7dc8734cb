package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	GetTimeSlotsSuccessMessage      = "available time slots retrieved successfully"
	CheckAvailabilitySuccessMessage = "availability checked successfully"
	CreateBookingSuccessMessage     = "booking confirmed successfully"
	GetBookingsSuccessMessage       = "bookings retrieved successfully"
	GetBookingSuccessMessage        = "booking retrieved successfully"
	CancelBookingSuccessMessage     = "booking cancelled successfully, the time slot is available again"
	CompleteBookingSuccessMessage   = "booking marked as completed"
	GetPricingSuccessMessage        = "pricing retrieved successfully"
	HealthCheckSuccessMessage       = "ok"
)
