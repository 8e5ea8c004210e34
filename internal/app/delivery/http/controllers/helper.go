package controllers

import (
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// writeUsecaseError maps a bare deadline error to a 504 before responding.
func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(log, w, err)
}
