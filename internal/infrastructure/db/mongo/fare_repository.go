package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

const collectionFares = "fare"

type FareRepository struct {
	col *mongo.Collection
}

func NewFareRepository(db *mongo.Database) *FareRepository {
	return &FareRepository{col: db.Collection(collectionFares)}
}

// Create inserts a new fare document, assigning its id. A duplicate fare
// code is reported as domain.ErrFareCodeExists (the collection carries a
// unique index on fareCode).
func (r *FareRepository) Create(ctx context.Context, f *domain.Fare) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.col.InsertOne(ctx, f); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrFareCodeExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a fare by its document id.
func (r *FareRepository) FindByID(ctx context.Context, id string) (*domain.Fare, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Fare
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFareNotFound
		}
		return nil, err
	}
	return &f, nil
}

// FindByCode retrieves a fare by its fare code.
func (r *FareRepository) FindByCode(ctx context.Context, fareCode string) (*domain.Fare, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Fare
	if err := r.col.FindOne(ctx, bson.M{"fareCode": fareCode}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFareNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByOrganization returns an organization's fares, newest first. When
// status is non-empty the result is additionally filtered by status.
func (r *FareRepository) ListByOrganization(ctx context.Context, organizationID string, status domain.FareStatus) ([]*domain.Fare, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"organizationId": organizationID}
	if status != "" {
		filter["status"] = status
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	fares := make([]*domain.Fare, 0)
	for cur.Next(ctx) {
		var f domain.Fare
		if err := cur.Decode(&f); err != nil {
			return nil, err
		}
		fares = append(fares, &f)
	}
	return fares, cur.Err()
}

// UpdateStatus sets the status of a fare.
func (r *FareRepository) UpdateStatus(ctx context.Context, id string, status domain.FareStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrFareNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the fare collection relies on.
func (r *FareRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "organizationId", Value: 1}}},
		{Keys: bson.D{{Key: "fareCode", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
