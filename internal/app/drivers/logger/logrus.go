package logger

import (
	"class-planner-service/internal/app/config"
	"class-planner-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// NewLogrusLogger is used for process lifecycle notices printed outside any request.
func NewLogrusLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	logger := logrus.New()
	if internalConfig.App.Env == constvars.AppEnvProduction {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
