package config

import (
	"class-planner-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "class_planner"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Session: AppSession{
			ExpiredTimeInHours: utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 24),
			EditLockTTL:        utils.GetEnvDuration("SESSION_EDIT_LOCK_TTL", 10*time.Second),
		},
		ScheduleGenerator: AppScheduleGenerator{
			BaseUrl:                     utils.GetEnvString("SCHEDULE_GENERATOR_BASE_URL", "http://localhost:8000"),
			GeneratePath:                utils.GetEnvString("SCHEDULE_GENERATOR_GENERATE_PATH", "/generate-schedules/"),
			Timeout:                     utils.GetEnvDuration("SCHEDULE_GENERATOR_TIMEOUT", 30*time.Second),
			LockMargin:                  utils.GetEnvDuration("SCHEDULE_GENERATOR_LOCK_MARGIN", 5*time.Second),
			MaxRequestsPerSecond:        utils.GetEnvFloat("SCHEDULE_GENERATOR_MAX_REQUESTS_PER_SECOND", 5),
			Burst:                       utils.GetEnvInt("SCHEDULE_GENERATOR_BURST", 10),
			SessionMaxRequestsPerMinute: utils.GetEnvInt("SCHEDULE_GENERATOR_SESSION_MAX_REQUESTS_PER_MINUTE", 6),
		},
		Calendar: AppCalendar{
			BucketName:         utils.GetEnvString("CALENDAR_BUCKET_NAME", "calendars"),
			PreSignedUrlExpiry: utils.GetEnvDuration("CALENDAR_PRE_SIGNED_URL_EXPIRY", time.Hour),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@localhost"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("RABBITMQ_MAILER_QUEUE", "mailer"),
		},
		Catalog: AppCatalog{
			SeedFile:     utils.GetEnvString("CATALOG_SEED_FILE", ""),
			DefaultLimit: utils.GetEnvInt("CATALOG_DEFAULT_LIMIT", 20),
		},
	}
}
