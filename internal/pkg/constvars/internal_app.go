package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	JWTClaimSessionID = "session_id"
	JWTClaimExpiresAt = "exp"
)

const (
	RedisKeyWizardSessionFormat = "wizard:session:%s"
	RedisKeySessionLockFormat   = "wizard:session-lock:%s"
)

const (
	MongoCollectionGenerationLogs  = "generation_logs"
	MongoCollectionCatalogSubjects = "catalog_subjects"
)

const (
	CalendarExportObjectNameFormat = "calendars/%s/%s.ics"
	CalendarProductID              = "-//class-planner-service//weekly schedule//EN"
)
