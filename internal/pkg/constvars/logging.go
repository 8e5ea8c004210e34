package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingSessionIDKey    = "session_id"
	LoggingStepKey         = "step"
	LoggingIndexKey        = "index"
	LoggingFieldKey        = "field"
	LoggingDataKey         = "data"
	LoggingRequestKey      = "request"
	LoggingResponseKey     = "response"
	LoggingErrorKindKey    = "error_kind"
	LoggingScheduleCount   = "schedule_count"
	LoggingEventCount      = "event_count"
	LoggingRedisKey        = "redis_key"
	LoggingLockValueKey    = "lock_value"
	LoggingLockExpiration  = "lock_expiration"
	LoggingBucketNameKey   = "bucket_name"
	LoggingObjectNameKey   = "object_name"
	LoggingQueueNameKey    = "queue_name"
	LoggingURLKey          = "url"
	LoggingStatusCodeKey   = "status_code"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingIsClientRequest = "is_client_request_id"
)
