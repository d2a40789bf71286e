package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type VisitorsRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewVisitorsRepository(db *mongo.Database, logger observability.Logger) *VisitorsRepository {
	return &VisitorsRepository{
		coll:   db.Collection("Visitors"),
		logger: logger,
	}
}

type visitorDoc struct {
	ID               uuid.UUID `bson:"_id"`
	FirstName        string    `bson:"firstName"`
	LastName         string    `bson:"lastName"`
	Email            string    `bson:"email"`
	Phone            string    `bson:"phone"`
	Address          string    `bson:"address"`
	City             string    `bson:"city"`
	Country          string    `bson:"country"`
	Interests        []string  `bson:"interests"`
	RegistrationDate time.Time `bson:"registrationDate"`
}

func visitorToDoc(v domain.Visitor) visitorDoc {
	return visitorDoc{
		ID:               v.ID,
		FirstName:        v.FirstName,
		LastName:         v.LastName,
		Email:            v.Email,
		Phone:            v.Phone,
		Address:          v.Address,
		City:             v.City,
		Country:          v.Country,
		Interests:        v.Interests,
		RegistrationDate: v.RegistrationDate,
	}
}

func visitorFromDoc(d visitorDoc) domain.Visitor {
	return domain.Visitor{
		ID:               d.ID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		Address:          d.Address,
		City:             d.City,
		Country:          d.Country,
		Interests:        d.Interests,
		RegistrationDate: d.RegistrationDate,
	}
}

func (r *VisitorsRepository) Insert(ctx context.Context, visitor domain.Visitor) error {
	_, err := r.coll.InsertOne(ctx, visitorToDoc(visitor))
	if err != nil {
		r.logger.Error("failed to insert visitor", err)
		return storeErr(err)
	}
	return nil
}

func (r *VisitorsRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Visitor, error) {
	var doc visitorDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	visitor := visitorFromDoc(doc)
	return &visitor, nil
}

func (r *VisitorsRepository) GetByEmail(ctx context.Context, email string) (*domain.Visitor, error) {
	var doc visitorDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	visitor := visitorFromDoc(doc)
	return &visitor, nil
}

func (r *VisitorsRepository) List(ctx context.Context) ([]domain.Visitor, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "firstName", Value: 1}}))
	if err != nil {
		r.logger.Error("failed to list visitors", err)
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var visitors []domain.Visitor
	for cur.Next(ctx) {
		var doc visitorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		visitors = append(visitors, visitorFromDoc(doc))
	}
	return visitors, storeErr(cur.Err())
}

func (r *VisitorsRepository) Update(ctx context.Context, visitor domain.Visitor) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": visitor.ID}, visitorToDoc(visitor))
	if err != nil {
		r.logger.Error("failed to update visitor", err)
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VisitorsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete visitor", err)
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VisitorsRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, storeErr(err)
}
