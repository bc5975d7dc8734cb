package utils

import (
	"testing"
	"tutorat-service/internal/pkg/dto/requests"
	"tutorat-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func validCreateBooking() requests.CreateBooking {
	return requests.CreateBooking{
		StartTime:  "2025-01-15T12:30:00-05:00",
		Duration:   "1h",
		FirstName:  "Camille",
		LastName:   "Tremblay",
		Email:      "camille@example.com",
		Phone:      "5145550123",
		GradeLevel: "secondaire-3",
		Location:   "online",
	}
}

func TestValidateStruct_CreateBooking(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *requests.CreateBooking)
		wantErr string
	}{
		{name: "valid", mutate: func(r *requests.CreateBooking) {}},
		{name: "unknown duration", mutate: func(r *requests.CreateBooking) { r.Duration = "45m" }, wantErr: "Duration must be one of [1h, 1h30, 2h]"},
		{name: "unknown grade", mutate: func(r *requests.CreateBooking) { r.GradeLevel = "cegep-1" }, wantErr: "GradeLevel must be a valid grade level"},
		{name: "short phone", mutate: func(r *requests.CreateBooking) { r.Phone = "514" }, wantErr: "Phone must be at least 10 characters long"},
		{name: "home without address", mutate: func(r *requests.CreateBooking) { r.Location = "home" }, wantErr: "Address is required when location is home"},
		{name: "home with address", mutate: func(r *requests.CreateBooking) {
			r.Location = "home"
			r.Address = "123 rue Principale"
		}},
		{name: "bad location", mutate: func(r *requests.CreateBooking) { r.Location = "cafe" }, wantErr: "Location must be one of [teacher, home, online]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validCreateBooking()
			tt.mutate(&request)

			err := ValidateStruct(request)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, exceptions.FormatFirstValidationError(err), tt.wantErr)
		})
	}
}
