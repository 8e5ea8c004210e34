package controllers

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/exceptions"
	"class-planner-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogController struct {
	Log            *zap.Logger
	CatalogUsecase contracts.CatalogUsecase
	RequestTimeout time.Duration
	DefaultLimit   int
}

func NewCatalogController(logger *zap.Logger, catalogUsecase contracts.CatalogUsecase, requestTimeout time.Duration, defaultLimit int) *CatalogController {
	return &CatalogController{
		Log:            logger,
		CatalogUsecase: catalogUsecase,
		RequestTimeout: requestTimeout,
		DefaultLimit:   defaultLimit,
	}
}

func (ctrl *CatalogController) SearchSubjects(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("CatalogController.SearchSubjects called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := &requests.CatalogSubjectQuery{
		Prefix: r.URL.Query().Get("prefix"),
		Limit:  ctrl.DefaultLimit,
	}
	var err error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		query.Limit, err = strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, "limit"))
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

	subjects, err := ctrl.CatalogUsecase.SearchSubjects(ctx, query)
	if err != nil {
		ctrl.Log.Error("CatalogController.SearchSubjects error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogSubjectsSuccess, subjects)
}

func (ctrl *CatalogController) CourseNumbers(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	subject := chi.URLParam(r, "subject")
	ctrl.Log.Info("CatalogController.CourseNumbers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subject", subject),
	)

	query := &requests.CatalogCourseQuery{Prefix: r.URL.Query().Get("prefix")}
	err := utils.ValidateStruct(query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.RequestTimeout)
	defer cancel()

	numbers, err := ctrl.CatalogUsecase.CourseNumbers(ctx, subject, query)
	if err != nil {
		ctrl.Log.Error("CatalogController.CourseNumbers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCatalogCoursesSuccess, numbers)
}
