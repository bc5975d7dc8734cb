package requests

type CreateBooking struct {
	StartTime  string `json:"start_time" validate:"required"`
	Duration   string `json:"duration" validate:"required,duration_label"`
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=10,max=20"`
	GradeLevel string `json:"grade_level" validate:"required,grade_level"`
	Location   string `json:"location" validate:"required,location"`
	Address    string `json:"address" validate:"required_if=Location home,max=255"`
	Notes      string `json:"notes" validate:"max=1000"`
}

type CheckAvailability struct {
	StartTime string `json:"start_time" validate:"required"`
	Duration  string `json:"duration" validate:"required,duration_label"`
}
