package utils

import (
	"class-planner-service/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("clock12", validateClock12)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateClock12 accepts a blank value so a break time can be cleared.
func validateClock12(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := To24Hour(value)
	return err == nil
}

func validateWeekday(fl validator.FieldLevel) bool {
	return IsCollectorWeekday(fl.Field().String())
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case constvars.TimeOfDayMorning, constvars.TimeOfDayAfternoon, constvars.TimeOfDayEvening:
		return true
	}
	return false
}
