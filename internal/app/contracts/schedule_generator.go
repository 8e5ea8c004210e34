package contracts

import (
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/dto/responses"
	"context"
)

// ScheduleGenerator sends one payload to the remote generator and returns its
// decoded answer. Errors carry an exceptions.Kind of transport or protocol.
type ScheduleGenerator interface {
	Generate(ctx context.Context, payload *requests.GenerateSchedules) (*responses.GenerateSchedules, error)
}
