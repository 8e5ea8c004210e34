package catalog

import (
	"class-planner-service/internal/app/contracts"
	"class-planner-service/internal/app/models"
	"class-planner-service/internal/pkg/constvars"
	"class-planner-service/internal/pkg/exceptions"
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CatalogMongoRepository struct {
	Collection *mongo.Collection
}

func NewCatalogMongoRepository(db *mongo.Client, dbName string) contracts.CatalogRepository {
	return &CatalogMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCatalogSubjects),
	}
}

// FindByPrefix returns subjects whose code starts with prefix, in code order.
func (repo *CatalogMongoRepository) FindByPrefix(ctx context.Context, prefix string, limit int64) ([]models.CatalogSubject, error) {
	filter := bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	subjects := []models.CatalogSubject{}
	err = cursor.All(ctx, &subjects)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return subjects, nil
}

func (repo *CatalogMongoRepository) FindBySubject(ctx context.Context, subject string) (*models.CatalogSubject, error) {
	result := new(models.CatalogSubject)
	err := repo.Collection.FindOne(ctx, bson.M{"_id": subject}).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, exceptions.ErrCatalogSubjectNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return result, nil
}

// UpsertMany replaces each subject document, inserting the missing ones, and
// returns how many subjects were written.
func (repo *CatalogMongoRepository) UpsertMany(ctx context.Context, subjects []models.CatalogSubject) (int64, error) {
	writes := make([]mongo.WriteModel, 0, len(subjects))
	for _, subject := range subjects {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": subject.Subject}).
			SetReplacement(subject).
			SetUpsert(true))
	}

	result, err := repo.Collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, exceptions.ErrMongoDBUpsertDocuments(err)
	}
	return result.MatchedCount + result.UpsertedCount, nil
}
