package constvars

const (
	WizardStepCourses     = 1
	WizardStepBreaks      = 2
	WizardStepPreferences = 3
	WizardStepResults     = 4
)

const (
	MaxCollectorEntries = 8
)

const (
	CourseFieldSubject      = "subject"
	CourseFieldCourseNumber = "courseNumber"
	BreakFieldStartTime     = "startTime"
	BreakFieldEndTime       = "endTime"
)

const (
	WeekdayMonday    = "M"
	WeekdayTuesday   = "T"
	WeekdayWednesday = "W"
	WeekdayThursday  = "R"
	WeekdayFriday    = "F"
	WeekdaySaturday  = "S"
	WeekdaySunday    = "U"
)

// CollectorWeekdays are the days a user may prefer, in display order.
var CollectorWeekdays = []string{WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday}

// CalendarWeekdays are the day keys the schedule generator may return.
var CalendarWeekdays = []string{WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday}

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

const (
	DefaultTimeOfDay  = TimeOfDayMorning
	DefaultDayWeight  = 0.5
	DefaultTimeWeight = 0.5
)

const (
	Clock12Layout          = "3:04 PM"
	Clock24Layout          = "15:04:05"
	ReferenceDateLayout    = "2006-01-02"
	ReferenceTimestampFmt  = "2006-01-02T15:04:05"
	FloatingICalTimeFmt    = "20060102T150405"
	ClassInfoTitleSep      = ": "
	ClassInfoTimeRangeSep  = " - "
	CourseCodeFormat       = "%s-%s"
	EventInfoFormat        = "CRN: %s"
	DefaultScheduleNameFmt = "Schedule %d"
)

// ReferenceWeekDates pins every weekday letter to one date of a fixed far-future
// week (Monday 4 January 2100) so any two schedules render on the same grid.
var ReferenceWeekDates = map[string]string{
	WeekdayMonday:    "2100-01-04",
	WeekdayTuesday:   "2100-01-05",
	WeekdayWednesday: "2100-01-06",
	WeekdayThursday:  "2100-01-07",
	WeekdayFriday:    "2100-01-08",
	WeekdaySaturday:  "2100-01-09",
	WeekdaySunday:    "2100-01-10",
}

const (
	GenerationOutcomeSucceeded        = "succeeded"
	GenerationOutcomeValidationFailed = "validation_failed"
	GenerationOutcomeTransportFailed  = "transport_failed"
	GenerationOutcomeProtocolFailed   = "protocol_failed"
)
