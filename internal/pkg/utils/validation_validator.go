package utils

import (
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("duration_label", validateDurationLabel)
	validate.RegisterValidation("grade_level", validateGradeLevel)
	validate.RegisterValidation("location", validateLocation)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDurationLabel(fl validator.FieldLevel) bool {
	return models.DurationLabel(fl.Field().String()).IsValid()
}

func validateGradeLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, level := range constvars.GradeLevels {
		if value == level {
			return true
		}
	}
	return false
}

func validateLocation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.LocationTeacher, constvars.LocationHome, constvars.LocationOnline:
		return true
	}
	return false
}
