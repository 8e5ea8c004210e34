package requests

type UpdateCourse struct {
	Field string `json:"field" validate:"required,oneof=subject courseNumber"`
	Value string `json:"value" validate:"max=16"`
}

type UpdateBreak struct {
	Field string `json:"field" validate:"required,oneof=startTime endTime"`
	Value string `json:"value" validate:"clock12"`
}

type SetTimeOfDay struct {
	TimeOfDay string `json:"time_of_day" validate:"required,time_of_day"`
}

// SetWeights updates either weight or both; a nil weight is left untouched.
type SetWeights struct {
	DayWeight  *float64 `json:"day_weight" validate:"omitempty,min=0,max=1"`
	TimeWeight *float64 `json:"time_weight" validate:"omitempty,min=0,max=1"`
}

type EmailSchedule struct {
	Email string `json:"email" validate:"required,email"`
}

type GenerationLogQuery struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1,max=100"`
}

type CatalogSubjectQuery struct {
	Prefix string `validate:"max=16"`
	Limit  int    `validate:"min=1,max=100"`
}

type CatalogCourseQuery struct {
	Prefix string `validate:"max=16"`
}
