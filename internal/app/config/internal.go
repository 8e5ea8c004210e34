package config

import "time"

type InternalConfig struct {
	App               App
	JWT               AppJWT
	Session           AppSession
	ScheduleGenerator AppScheduleGenerator
	Calendar          AppCalendar
	Mailer            AppMailer
	RabbitMQ          AppRabbitMQ
	Catalog           AppCatalog
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppSession struct {
	ExpiredTimeInHours int
	// EditLockTTL bounds how long a single edit may hold the session lock.
	EditLockTTL time.Duration
}

// AppScheduleGenerator points at the remote service that builds schedules.
type AppScheduleGenerator struct {
	BaseUrl              string
	GeneratePath         string
	Timeout              time.Duration
	LockMargin           time.Duration
	MaxRequestsPerSecond float64
	Burst                int
	// SessionMaxRequestsPerMinute bounds generate calls per wizard session.
	SessionMaxRequestsPerMinute int
}

type AppCalendar struct {
	BucketName         string
	PreSignedUrlExpiry time.Duration
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

// AppCatalog feeds the subject and course number autocomplete.
type AppCatalog struct {
	SeedFile     string
	DefaultLimit int
}
