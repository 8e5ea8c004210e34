package utils

import (
	"class-planner-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Break Value Accepts Clock Or Blank", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.UpdateBreak{Field: "startTime", Value: "10:00 AM"}))
		assert.NoError(t, ValidateStruct(&requests.UpdateBreak{Field: "endTime", Value: ""}))
		assert.Error(t, ValidateStruct(&requests.UpdateBreak{Field: "startTime", Value: "10:00"}))
	})

	t.Run("Course Field Must Be Known", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.UpdateCourse{Field: "courseNumber", Value: "101"}))
		assert.Error(t, ValidateStruct(&requests.UpdateCourse{Field: "title", Value: "101"}))
	})

	t.Run("Time Of Day", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.SetTimeOfDay{TimeOfDay: "evening"}))
		assert.Error(t, ValidateStruct(&requests.SetTimeOfDay{TimeOfDay: "night"}))
	})

	t.Run("Weights Stay Within Range", func(t *testing.T) {
		inRange, outOfRange := 0.25, 1.5
		assert.NoError(t, ValidateStruct(&requests.SetWeights{DayWeight: &inRange}))
		assert.Error(t, ValidateStruct(&requests.SetWeights{TimeWeight: &outOfRange}))
	})

	t.Run("Email", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&requests.EmailSchedule{Email: "student@example.edu"}))
		assert.Error(t, ValidateStruct(&requests.EmailSchedule{Email: "not-an-email"}))
	})
}
