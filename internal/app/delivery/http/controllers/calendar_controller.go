package controllers

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type CalendarController struct {
	Log             *zap.Logger
	CalendarUsecase contracts.CalendarUsecase
	RequestTimeout  time.Duration
}

func NewCalendarController(logger *zap.Logger, calendarUsecase contracts.CalendarUsecase, requestTimeout time.Duration) *CalendarController {
	return &CalendarController{
		Log:             logger,
		CalendarUsecase: calendarUsecase,
		RequestTimeout:  requestTimeout,
	}
}

func (ctrl *CalendarController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "GetCalendar", constvars.GetCalendarSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return ctrl.CalendarUsecase.GetCalendar(ctx, sessionID)
	})
}

func (ctrl *CalendarController) ActivateSchedule(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respond(w, r, "ActivateSchedule", constvars.CalendarSelectionSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return ctrl.CalendarUsecase.ActivateSchedule(ctx, sessionID, index)
	})
}

func (ctrl *CalendarController) SelectEvent(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respond(w, r, "SelectEvent", constvars.CalendarSelectionSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return ctrl.CalendarUsecase.SelectEvent(ctx, sessionID, index)
	})
}

func (ctrl *CalendarController) DismissSelection(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "DismissSelection", constvars.CalendarSelectionSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return ctrl.CalendarUsecase.DismissSelection(ctx, sessionID)
	})
}

func (ctrl *CalendarController) Export(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "Export", constvars.CalendarExportSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return ctrl.CalendarUsecase.Export(ctx, sessionID)
	})
}

func (ctrl *CalendarController) Email(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EmailSchedule)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.respond(w, r, "Email", constvars.CalendarEmailQueuedSuccess, func(ctx context.Context, sessionID string) (interface{}, error) {
		return nil, ctrl.CalendarUsecase.Email(ctx, sessionID, request)
	})
}

func (ctrl *CalendarController) respond(w http.ResponseWriter, r *http.Request, operation, successMessage string, action func(ctx context.Context, sessionID string) (interface{}, error)) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := middlewares.SessionIDFromContext(r.Context())
	ctrl.Log.Info("CalendarController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := action(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("CalendarController."+operation+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}
