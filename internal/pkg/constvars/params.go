package constvars

const (
	URLParamBookingID = "booking_id"
)

const (
	URLQueryParamDate     = "date"
	URLQueryParamDuration = "duration"
	URLQueryParamGrade    = "grade"
	URLQueryParamLocation = "location"
)
