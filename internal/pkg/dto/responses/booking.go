package responses

import "time"

type TimeSlot struct {
	Start     string    `json:"start"`
	End       string    `json:"end"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type TimeSlotWithDuration struct {
	TimeSlot
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"duration_minutes"`
}

type Availability struct {
	Available     bool       `json:"available"`
	Reason        string     `json:"reason,omitempty"`
	NextAvailable *time.Time `json:"next_available,omitempty"`
}

type Booking struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Duration   string    `json:"duration"`
	Status     string    `json:"status"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	GradeLevel string    `json:"grade_level"`
	Location   string    `json:"location"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Price      int       `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateBookingResult is both the 201 body and the 409 body of a booking attempt.
type CreateBookingResult struct {
	Success       bool       `json:"success"`
	Message       string     `json:"message,omitempty"`
	Booking       *Booking   `json:"booking,omitempty"`
	Error         string     `json:"error,omitempty"`
	NextAvailable *time.Time `json:"next_available,omitempty"`
	Warnings      []string   `json:"warnings,omitempty"`
}

type SessionPrice struct {
	Duration string `json:"duration"`
	Price    int    `json:"price"`
}

type PackagePrice struct {
	Duration        string `json:"duration"`
	SessionsPerWeek int    `json:"sessions_per_week"`
	Price           int    `json:"price"`
	OriginalPrice   int    `json:"original_price"`
	Savings         int    `json:"savings"`
}

type Pricing struct {
	Grade    string         `json:"grade"`
	Location string         `json:"location"`
	Sessions []SessionPrice `json:"sessions"`
	Packages []PackagePrice `json:"packages"`
}

type HealthCheck struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
