package controllers

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultGenerationLogPage     = 1
	defaultGenerationLogPageSize = 20
)

type GenerationLogController struct {
	Log                  *zap.Logger
	GenerationLogUsecase contracts.GenerationLogUsecase
	RequestTimeout       time.Duration
}

func NewGenerationLogController(logger *zap.Logger, generationLogUsecase contracts.GenerationLogUsecase, requestTimeout time.Duration) *GenerationLogController {
	return &GenerationLogController{
		Log:                  logger,
		GenerationLogUsecase: generationLogUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *GenerationLogController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := middlewares.SessionIDFromContext(r.Context())
	ctrl.Log.Info("GenerationLogController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	query := &requests.GenerationLogQuery{
		Page:     defaultGenerationLogPage,
		PageSize: defaultGenerationLogPageSize,
	}
	var err error
	if raw := r.URL.Query().Get("page"); raw != "" {
		query.Page, err = strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "page"))
			return
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		query.PageSize, err = strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "page_size"))
			return
		}
	}
	err = utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	logs, pagination, err := ctrl.GenerationLogUsecase.FindBySessionID(ctx, sessionID, query)
	if err != nil {
		ctrl.Log.Error("GenerationLogController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetGenerationLogsSuccess, logs, pagination)
}
