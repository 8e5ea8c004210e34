package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	SessionCreatedSuccess      = "wizard session created"
	SessionDeletedSuccess      = "wizard session discarded"
	GetSessionSuccess          = "get wizard session successfully"
	WizardStepUpdatedSuccess   = "wizard step updated"
	CoursesUpdatedSuccess      = "courses updated"
	BreaksUpdatedSuccess       = "breaks updated"
	PreferencesUpdatedSuccess  = "preferences updated"
	GenerateScheduleSuccess    = "schedules generated successfully"
	GetCalendarSuccess         = "get calendar successfully"
	CalendarSelectionSuccess   = "calendar selection updated"
	CalendarExportSuccess      = "calendar exported successfully"
	CalendarEmailQueuedSuccess = "schedule email queued"
	GetGenerationLogsSuccess   = "get generation logs successfully"
	GetCatalogSubjectsSuccess  = "get catalog subjects successfully"
	GetCatalogCoursesSuccess   = "get catalog course numbers successfully"
)
