package generation_logs

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenerationLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewGenerationLogMongoRepository(db *mongo.Client, dbName string) contracts.GenerationLogRepository {
	return &GenerationLogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionGenerationLogs),
	}
}

func (repo *GenerationLogMongoRepository) Insert(ctx context.Context, log *models.GenerationLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	_, err := repo.Collection.InsertOne(ctx, log)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindBySessionID returns one page of logs, newest first, and the total count.
func (repo *GenerationLogMongoRepository) FindBySessionID(ctx context.Context, sessionID string, skip, limit int64) ([]models.GenerationLog, int64, error) {
	filter := bson.M{"session_id": sessionID}

	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	logs := []models.GenerationLog{}
	err = cursor.All(ctx, &logs)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return logs, total, nil
}
