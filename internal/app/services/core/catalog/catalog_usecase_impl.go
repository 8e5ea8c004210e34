package catalog

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/dto/requests"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type catalogUsecase struct {
	CatalogRepository contracts.CatalogRepository
	Log               *zap.Logger
}

func NewCatalogUsecase(repository contracts.CatalogRepository, logger *zap.Logger) contracts.CatalogUsecase {
	return &catalogUsecase{
		CatalogRepository: repository,
		Log:               logger,
	}
}

func (uc *catalogUsecase) SearchSubjects(ctx context.Context, query *requests.CatalogSubjectQuery) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	prefix := normalizeCode(query.Prefix)
	uc.Log.Info("catalogUsecase.SearchSubjects called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prefix", prefix),
	)

	subjects, err := uc.CatalogRepository.FindByPrefix(ctx, prefix, int64(query.Limit))
	if err != nil {
		uc.Log.Error("catalogUsecase.SearchSubjects error fetching subjects",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	codes := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		codes = append(codes, subject.Subject)
	}
	return codes, nil
}

func (uc *catalogUsecase) CourseNumbers(ctx context.Context, subject string, query *requests.CatalogCourseQuery) ([]string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	subject = normalizeCode(subject)
	uc.Log.Info("catalogUsecase.CourseNumbers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("subject", subject),
	)

	stored, err := uc.CatalogRepository.FindBySubject(ctx, subject)
	if err != nil {
		return nil, err
	}

	prefix := normalizeCode(query.Prefix)
	numbers := []string{}
	for _, number := range stored.CourseNumbers {
		if strings.HasPrefix(number, prefix) {
			numbers = append(numbers, number)
		}
	}
	return numbers, nil
}

// ImportSubjects upper-cases and de-duplicates the codes before storing them.
// Blank subjects and course numbers are skipped.
func (uc *catalogUsecase) ImportSubjects(ctx context.Context, subjects map[string][]string) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("catalogUsecase.ImportSubjects called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("subject_count", len(subjects)),
	)

	merged := map[string]map[string]struct{}{}
	for subject, numbers := range subjects {
		code := normalizeCode(subject)
		if code == "" {
			continue
		}
		if merged[code] == nil {
			merged[code] = map[string]struct{}{}
		}
		for _, number := range numbers {
			number = normalizeCode(number)
			if number != "" {
				merged[code][number] = struct{}{}
			}
		}
	}
	if len(merged) == 0 {
		return 0, nil
	}

	documents := make([]models.CatalogSubject, 0, len(merged))
	for code, numbers := range merged {
		document := models.CatalogSubject{Subject: code, CourseNumbers: make([]string, 0, len(numbers))}
		for number := range numbers {
			document.CourseNumbers = append(document.CourseNumbers, number)
		}
		sort.Strings(document.CourseNumbers)
		documents = append(documents, document)
	}
	sort.Slice(documents, func(i, j int) bool { return documents[i].Subject < documents[j].Subject })

	written, err := uc.CatalogRepository.UpsertMany(ctx, documents)
	if err != nil {
		uc.Log.Error("catalogUsecase.ImportSubjects error storing subjects",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}

	uc.Log.Info("catalogUsecase.ImportSubjects succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("written", written),
	)
	return written, nil
}

// LoadSeedFile reads a JSON object mapping subject codes to course numbers.
func LoadSeedFile(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrReadCatalogSeed(err)
	}

	subjects := map[string][]string{}
	err = json.Unmarshal(data, &subjects)
	if err != nil {
		return nil, exceptions.ErrReadCatalogSeed(err)
	}
	return subjects, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
