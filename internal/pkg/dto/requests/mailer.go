package requests

import "time"

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLCode string   `json:"html_code"`
}

// BookingConfirmationMessage is the queue payload consumed by the notifier worker.
type BookingConfirmationMessage struct {
	BookingID  string    `json:"booking_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Duration   string    `json:"duration"`
	GradeLevel string    `json:"grade_level"`
	Location   string    `json:"location"`
	Address    string    `json:"address,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Price      int       `json:"price"`
}
