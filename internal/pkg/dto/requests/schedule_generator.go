package requests

// GenerateSchedules is the body accepted by the schedule generator service.
type GenerateSchedules struct {
	Courses       []string      `json:"courses"`
	Breaks        []BreakWindow `json:"breaks"`
	PreferredDays []string      `json:"preferred_days"`
	PreferredTime string        `json:"preferred_time"`
	DayWeight     float64       `json:"day_weight"`
	TimeWeight    float64       `json:"time_weight"`
}

type BreakWindow struct {
	BeginTime string `json:"begin_time"`
	EndTime   string `json:"end_time"`
}
