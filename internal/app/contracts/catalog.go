package contracts

import (
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/dto/requests"
	"context"
)

type CatalogUsecase interface {
	SearchSubjects(ctx context.Context, query *requests.CatalogSubjectQuery) ([]string, error)
	CourseNumbers(ctx context.Context, subject string, query *requests.CatalogCourseQuery) ([]string, error)
	ImportSubjects(ctx context.Context, subjects map[string][]string) (int64, error)
}

type CatalogRepository interface {
	FindByPrefix(ctx context.Context, prefix string, limit int64) ([]models.CatalogSubject, error)
	FindBySubject(ctx context.Context, subject string) (*models.CatalogSubject, error)
	UpsertMany(ctx context.Context, subjects []models.CatalogSubject) (int64, error)
}
