package controllers

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WizardController struct {
	Log            *zap.Logger
	WizardUsecase  contracts.WizardUsecase
	RequestTimeout time.Duration
}

func NewWizardController(logger *zap.Logger, wizardUsecase contracts.WizardUsecase, requestTimeout time.Duration) *WizardController {
	return &WizardController{
		Log:            logger,
		WizardUsecase:  wizardUsecase,
		RequestTimeout: requestTimeout,
	}
}

type sessionAction func(ctx context.Context, sessionID string) (*models.WizardSession, error)

func (ctrl *WizardController) CreateSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("WizardController.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := ctrl.WizardUsecase.CreateSession(ctx)
	if err != nil {
		ctrl.Log.Error("WizardController.CreateSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SessionCreatedSuccess, result)
}

func (ctrl *WizardController) GetSession(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "GetSession", constvars.GetSessionSuccess, ctrl.WizardUsecase.GetSession)
}

func (ctrl *WizardController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := middlewares.SessionIDFromContext(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	err := ctrl.WizardUsecase.DeleteSession(ctx, sessionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionDeletedSuccess, nil)
}

func (ctrl *WizardController) Next(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "Next", constvars.WizardStepUpdatedSuccess, ctrl.WizardUsecase.Next)
}

func (ctrl *WizardController) Previous(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "Previous", constvars.WizardStepUpdatedSuccess, ctrl.WizardUsecase.Previous)
}

// Generate is not bound by RequestTimeout; the usecase applies the generator timeout.
func (ctrl *WizardController) Generate(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := middlewares.SessionIDFromContext(r.Context())
	ctrl.Log.Info("WizardController.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	result, err := ctrl.WizardUsecase.Generate(r.Context(), sessionID)
	if err != nil {
		ctrl.Log.Error("WizardController.Generate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateScheduleSuccess, result)
}

func (ctrl *WizardController) AddCourse(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "AddCourse", constvars.CoursesUpdatedSuccess, ctrl.WizardUsecase.AddCourse)
}

func (ctrl *WizardController) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateCourse)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "UpdateCourse", constvars.CoursesUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.UpdateCourse(ctx, sessionID, index, request)
	})
}

func (ctrl *WizardController) RemoveCourse(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "RemoveCourse", constvars.CoursesUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.RemoveCourse(ctx, sessionID, index)
	})
}

func (ctrl *WizardController) AddBreak(w http.ResponseWriter, r *http.Request) {
	ctrl.respond(w, r, "AddBreak", constvars.BreaksUpdatedSuccess, ctrl.WizardUsecase.AddBreak)
}

func (ctrl *WizardController) UpdateBreak(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request := new(requests.UpdateBreak)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "UpdateBreak", constvars.BreaksUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.UpdateBreak(ctx, sessionID, index, request)
	})
}

func (ctrl *WizardController) RemoveBreak(w http.ResponseWriter, r *http.Request) {
	index, err := utils.ParseIndexParam(r, "index")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "RemoveBreak", constvars.BreaksUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.RemoveBreak(ctx, sessionID, index)
	})
}

func (ctrl *WizardController) ToggleDay(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	ctrl.respond(w, r, "ToggleDay", constvars.PreferencesUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.ToggleDay(ctx, sessionID, day)
	})
}

func (ctrl *WizardController) SetTimeOfDay(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetTimeOfDay)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "SetTimeOfDay", constvars.PreferencesUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.SetTimeOfDay(ctx, sessionID, request)
	})
}

func (ctrl *WizardController) SetWeights(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SetWeights)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.respond(w, r, "SetWeights", constvars.PreferencesUpdatedSuccess, func(ctx context.Context, sessionID string) (*models.WizardSession, error) {
		return ctrl.WizardUsecase.SetWeights(ctx, sessionID, request)
	})
}

func (ctrl *WizardController) respond(w http.ResponseWriter, r *http.Request, operation, successMessage string, action sessionAction) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID := middlewares.SessionIDFromContext(r.Context())
	ctrl.Log.Info("WizardController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	result, err := action(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("WizardController."+operation+" error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}
