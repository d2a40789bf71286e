package mongo

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type EventsRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewEventsRepository(db *mongo.Database, logger observability.Logger) *EventsRepository {
	return &EventsRepository{
		coll:   db.Collection("Events"),
		logger: logger,
	}
}

type eventDoc struct {
	ID             uuid.UUID            `bson:"_id"`
	Name           string               `bson:"eventName"`
	Description    string               `bson:"description"`
	Date           time.Time            `bson:"eventDate"`
	Time           string               `bson:"eventTime"`
	Location       string               `bson:"location"`
	Category       string               `bson:"category"`
	ImageURL       string               `bson:"imageUrl"`
	Capacity       int                  `bson:"capacity"`
	AvailableSeats int                  `bson:"availableSeats"`
	TicketPrice    primitive.Decimal128 `bson:"ticketPrice"`
	IsActive       bool                 `bson:"isActive"`
}

func eventToDoc(e domain.Event) eventDoc {
	return eventDoc{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Date:           e.Date,
		Time:           e.Time,
		Location:       e.Location,
		Category:       e.Category,
		ImageURL:       e.ImageURL,
		Capacity:       e.Capacity,
		AvailableSeats: e.AvailableSeats,
		TicketPrice:    toDecimal128(e.TicketPrice),
		IsActive:       e.IsActive,
	}
}

func eventFromDoc(d eventDoc) domain.Event {
	return domain.Event{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Date:           d.Date,
		Time:           d.Time,
		Location:       d.Location,
		Category:       d.Category,
		ImageURL:       d.ImageURL,
		Capacity:       d.Capacity,
		AvailableSeats: d.AvailableSeats,
		TicketPrice:    fromDecimal128(d.TicketPrice),
		IsActive:       d.IsActive,
	}
}

func (r *EventsRepository) Insert(ctx context.Context, event domain.Event) error {
	_, err := r.coll.InsertOne(ctx, eventToDoc(event))
	if err != nil {
		r.logger.Error("failed to insert event", err)
		return storeErr(err)
	}
	return nil
}

func (r *EventsRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var doc eventDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	event := eventFromDoc(doc)
	return &event, nil
}

func (r *EventsRepository) List(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, bson.M{})
}

func (r *EventsRepository) ListActive(ctx context.Context) ([]domain.Event, error) {
	return r.list(ctx, bson.M{"isActive": true})
}

func (r *EventsRepository) list(ctx context.Context, filter bson.M) ([]domain.Event, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "eventDate", Value: 1}}))
	if err != nil {
		r.logger.Error("failed to list events", err)
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var events []domain.Event
	for cur.Next(ctx) {
		var doc eventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		events = append(events, eventFromDoc(doc))
	}
	return events, storeErr(cur.Err())
}

// UpdateDetails rewrites the mutable fields. Capacity is fixed at creation and
// availableSeats moves only through ReserveSeats/ReleaseSeats, so neither is
// touched here.
func (r *EventsRepository) UpdateDetails(ctx context.Context, event domain.Event) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": event.ID}, bson.M{"$set": bson.M{
		"eventName":   event.Name,
		"description": event.Description,
		"eventDate":   event.Date,
		"eventTime":   event.Time,
		"location":    event.Location,
		"category":    event.Category,
		"imageUrl":    event.ImageURL,
		"ticketPrice": toDecimal128(event.TicketPrice),
		"isActive":    event.IsActive,
	}})
	if err != nil {
		r.logger.Error("failed to update event", err)
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *EventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete event", err)
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReserveSeats decrements availableSeats by n in a single conditional update:
// the filter requires availableSeats >= n, so two concurrent reservations can
// never drive the counter negative. Returns the event as it stands after the
// decrement.
func (r *EventsRepository) ReserveSeats(ctx context.Context, id uuid.UUID, n int) (*domain.Event, error) {
	var doc eventDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "availableSeats": bson.M{"$gte": n}},
		bson.M{"$inc": bson.M{"availableSeats": -n}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		count, cerr := r.coll.CountDocuments(ctx, bson.M{"_id": id})
		if cerr != nil {
			return nil, storeErr(cerr)
		}
		if count == 0 {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientSeats
	}
	if err != nil {
		r.logger.Error("failed to reserve seats", err)
		return nil, storeErr(err)
	}
	event := eventFromDoc(doc)
	return &event, nil
}

// ReleaseSeats returns n seats to the event, clamping at capacity inside the
// update pipeline so the invariant availableSeats <= capacity holds even if
// the counter has drifted.
func (r *EventsRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, n int) (*domain.Event, error) {
	var doc eventDoc
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		mongo.Pipeline{{{Key: "$set", Value: bson.M{
			"availableSeats": bson.M{"$min": bson.A{"$capacity", bson.M{"$add": bson.A{"$availableSeats", n}}}},
		}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	event := eventFromDoc(doc)
	return &event, nil
}

// SetAvailableSeats overwrites the counter. Used only by reconciliation.
func (r *EventsRepository) SetAvailableSeats(ctx context.Context, id uuid.UUID, seats int) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"availableSeats": seats}})
	if err != nil {
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
