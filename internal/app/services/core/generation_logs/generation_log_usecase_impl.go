package generation_logs

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"context"

	"go.uber.org/zap"
)

type generationLogUsecase struct {
	GenerationLogRepository contracts.GenerationLogRepository
	Log                     *zap.Logger
}

func NewGenerationLogUsecase(repository contracts.GenerationLogRepository, logger *zap.Logger) contracts.GenerationLogUsecase {
	return &generationLogUsecase{
		GenerationLogRepository: repository,
		Log:                     logger,
	}
}

func (uc *generationLogUsecase) FindBySessionID(ctx context.Context, sessionID string, query *requests.GenerationLogQuery) ([]models.GenerationLog, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("generationLogUsecase.FindBySessionID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	skip := int64((query.Page - 1) * query.PageSize)
	logs, total, err := uc.GenerationLogRepository.FindBySessionID(ctx, sessionID, skip, int64(query.PageSize))
	if err != nil {
		uc.Log.Error("generationLogUsecase.FindBySessionID error fetching logs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	pagination := &responses.Pagination{
		Total:    int(total),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	return logs, pagination, nil
}
