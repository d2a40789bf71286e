package mongo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type AttractionsRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewAttractionsRepository(db *mongo.Database, logger observability.Logger) *AttractionsRepository {
	return &AttractionsRepository{
		coll:   db.Collection("Attractions"),
		logger: logger,
	}
}

type attractionDoc struct {
	ID           uuid.UUID `bson:"_id"`
	Name         string    `bson:"name"`
	Description  string    `bson:"description"`
	Category     string    `bson:"category"`
	OpeningHours string    `bson:"openingHours"`
	ImageURL     string    `bson:"imageUrl"`
	IsActive     bool      `bson:"isActive"`
}

func attractionToDoc(a domain.Attraction) attractionDoc {
	return attractionDoc(a)
}

func attractionFromDoc(d attractionDoc) domain.Attraction {
	return domain.Attraction(d)
}

func (r *AttractionsRepository) Insert(ctx context.Context, attraction domain.Attraction) error {
	_, err := r.coll.InsertOne(ctx, attractionToDoc(attraction))
	if err != nil {
		r.logger.Error("failed to insert attraction", err)
		return storeErr(err)
	}
	return nil
}

func (r *AttractionsRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Attraction, error) {
	var doc attractionDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	attraction := attractionFromDoc(doc)
	return &attraction, nil
}

func (r *AttractionsRepository) List(ctx context.Context) ([]domain.Attraction, error) {
	return r.list(ctx, bson.M{})
}

func (r *AttractionsRepository) ListActive(ctx context.Context) ([]domain.Attraction, error) {
	return r.list(ctx, bson.M{"isActive": true})
}

func (r *AttractionsRepository) list(ctx context.Context, filter bson.M) ([]domain.Attraction, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		r.logger.Error("failed to list attractions", err)
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var attractions []domain.Attraction
	for cur.Next(ctx) {
		var doc attractionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		attractions = append(attractions, attractionFromDoc(doc))
	}
	return attractions, storeErr(cur.Err())
}

func (r *AttractionsRepository) Update(ctx context.Context, attraction domain.Attraction) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": attraction.ID}, attractionToDoc(attraction))
	if err != nil {
		r.logger.Error("failed to update attraction", err)
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AttractionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete attraction", err)
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
