package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type Booking struct {
	ID         string        `json:"id"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	Duration   DurationLabel `json:"duration"`
	Status     BookingStatus `json:"status"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone"`
	GradeLevel string        `json:"grade_level"`
	Location   string        `json:"location"`
	Address    string        `json:"address,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	Price      int           `json:"price"`
	TimeModel
}

func (b *Booking) FullName() string {
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}
