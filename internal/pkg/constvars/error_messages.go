package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
	"oneof":       "must be one of [%s]",
	"clock12":     "must be a time such as 9:00 AM",
	"weekday":     "must be one of M, T, W, R, F",
	"time_of_day": "must be one of morning, afternoon, evening",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "your wizard session is missing or invalid, please start again"
	ErrClientSessionNotFound               = "your wizard session has expired, please start again"
	ErrClientCatalogSubjectNotFound        = "we do not know that subject"
	ErrClientWeightsMustSumToOne           = "weights must add to 1.0"
	ErrClientWeightOutOfRange              = "weights must be between 0 and 1"
	ErrClientCourseRequired                = "enter at least one course with a subject and course number"
	ErrClientGenerationInFlight            = "your schedules are still being generated"
	ErrClientSessionBusy                   = "your wizard is being updated in another request, please try again"
	ErrClientGenerateNotAllowed            = "schedules can only be generated from the preferences step"
	ErrClientScheduleServiceUnavailable    = "the schedule generator is unavailable, please try again"
	ErrClientScheduleServiceTimeout        = "the schedule generator took too long to respond, please try again"
	ErrClientScheduleUnreadable            = "the schedule generator returned schedules we could not read"
	ErrClientNoScheduleGenerated           = "no schedules have been generated yet"
	ErrClientIndexOutOfRange               = "the selected entry does not exist"
	ErrClientUnknownField                  = "the selected field cannot be edited"
	ErrClientTooManyRequests               = "too many requests, please wait a moment"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamValidationFailed   = "failed to validate URL param: %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevTooManyRequests            = "request rate limit exceeded"
	ErrDevRequestBodyTooLarge        = "request body exceeds the configured limit"
	ErrDevAuthTokenMissing           = "session token missing"
	ErrDevAuthTokenInvalidOrExpired  = "session token invalid or expired"
	ErrDevAuthGenerateToken          = "failed to generate session token"
	ErrDevSessionNotFound            = "wizard session not found"
	ErrDevCatalogSubjectNotFound     = "catalog subject not found"
	ErrDevReadCatalogSeed            = "failed to read catalog seed file"
	ErrDevWeightsSum                 = "day_weight + time_weight != 1.0"
	ErrDevWeightRange                = "weight outside [0,1]"
	ErrDevNoCompleteCourse           = "no complete course in payload"
	ErrDevGenerationInFlight         = "generation lock held for session"
	ErrDevSessionBusy                = "session lock held by a concurrent edit"
	ErrDevGenerateWrongStep          = "generate called outside the preferences step"
	ErrDevNoScheduleGenerated        = "no parsed schedules on session"
	ErrDevIndexOutOfRange            = "index out of range"
	ErrDevUnknownField               = "unknown collector field"
	ErrDevInvalidClockTime           = "invalid 12-hour clock time"
	ErrDevInvalidWeekday             = "invalid weekday letter"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevScheduleServiceStatus      = "schedule generator responded with status %d"
	ErrDevScheduleServiceRateLimited = "schedule generator outbound limiter refused request"
	ErrDevDecodeScheduleResponse     = "failed to decode schedule generator response"
	ErrDevScheduleProtocol           = "schedule generator response violates contract"
	ErrDevScheduleResponseTooLarge   = "schedule generator response exceeds size limit"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevRedisUnlock                = "failed to release redis lock"
	ErrDevMongoDBInsertDocument      = "failed to insert document into mongodb"
	ErrDevMongoDBFindDocument        = "failed to find document in mongodb"
	ErrDevMongoDBIterateDocuments    = "failed to iterate mongodb documents"
	ErrDevMongoDBUpsertDocuments     = "failed to upsert documents into mongodb"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevCalendarRender             = "failed to render calendar"
)
