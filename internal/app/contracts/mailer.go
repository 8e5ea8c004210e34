package contracts

import (
	"class-planner-service/internal/pkg/dto/requests"
	"context"
)

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
