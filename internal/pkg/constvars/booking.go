package constvars

const (
	// BookingBufferMinutes is the travel padding applied before and after every session.
	BookingBufferMinutes = 30

	// BookingMaxDayScopedBufferMinutes bounds the buffer. Sessions whose buffered
	// interval leaves their day are refused, so a larger buffer would only shrink
	// the bookable part of the day.
	BookingMaxDayScopedBufferMinutes = 120

	BookingAdvisoryLockNamespace = 7341

	BookingCompletionLeaderTTLInSeconds = 120
	BookingCompletionFallbackCronSpec   = "@hourly"
)

const (
	RedisKeyBookingDayLockFormat    = "booking:lock:%s"
	RedisKeyBookingCompletionLeader = "booking:completion:leader"
)

const (
	LocationTeacher = "teacher"
	LocationHome    = "home"
	LocationOnline  = "online"
)

const (
	GradeBandPrimaire   = "primaire"
	GradeBandSecondaire = "secondaire"
)

var GradeLevels = []string{
	"primaire-1", "primaire-2", "primaire-3", "primaire-4", "primaire-5", "primaire-6",
	"secondaire-1", "secondaire-2", "secondaire-3", "secondaire-4", "secondaire-5",
}

const (
	BookingConflictReasonFormat = "unavailable: a session is already booked from %s to %s (including travel buffers)"
	BookingConflictMessage      = "the requested time slot is not available"
	WarningNotificationFailed   = "booking confirmed but the confirmation email could not be queued"
)
