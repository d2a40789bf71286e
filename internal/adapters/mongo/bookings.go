package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/domain"
	"github.com/sunnyedmonds/OnewheroBayHeritageParkSystem/internal/observability"
)

type BookingsRepository struct {
	coll   *mongo.Collection
	logger observability.Logger
}

func NewBookingsRepository(db *mongo.Database, logger observability.Logger) *BookingsRepository {
	return &BookingsRepository{
		coll:   db.Collection("Bookings"),
		logger: logger,
	}
}

type bookingDoc struct {
	ID          uuid.UUID            `bson:"_id"`
	VisitorID   uuid.UUID            `bson:"visitorId"`
	VisitorName string               `bson:"visitorName"`
	EventID     uuid.UUID            `bson:"eventId"`
	EventName   string               `bson:"eventName"`
	TicketCount int                  `bson:"numberOfTickets"`
	TotalAmount primitive.Decimal128 `bson:"totalAmount"`
	Status      string               `bson:"bookingStatus"`
	BookingDate time.Time            `bson:"bookingDate"`
}

func bookingToDoc(b domain.Booking) bookingDoc {
	return bookingDoc{
		ID:          b.ID,
		VisitorID:   b.VisitorID,
		VisitorName: b.VisitorName,
		EventID:     b.EventID,
		EventName:   b.EventName,
		TicketCount: b.TicketCount,
		TotalAmount: toDecimal128(b.TotalAmount),
		Status:      b.Status,
		BookingDate: b.BookingDate,
	}
}

func bookingFromDoc(d bookingDoc) domain.Booking {
	return domain.Booking{
		ID:          d.ID,
		VisitorID:   d.VisitorID,
		VisitorName: d.VisitorName,
		EventID:     d.EventID,
		EventName:   d.EventName,
		TicketCount: d.TicketCount,
		TotalAmount: fromDecimal128(d.TotalAmount),
		Status:      d.Status,
		BookingDate: d.BookingDate,
	}
}

func (r *BookingsRepository) Insert(ctx context.Context, booking domain.Booking) error {
	_, err := r.coll.InsertOne(ctx, bookingToDoc(booking))
	if err != nil {
		r.logger.Error("failed to insert booking", err)
		return storeErr(err)
	}
	return nil
}

func (r *BookingsRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var doc bookingDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, storeErr(err)
	}
	booking := bookingFromDoc(doc)
	return &booking, nil
}

func (r *BookingsRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingsRepository) ListByVisitor(ctx context.Context, visitorID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"visitorId": visitorID})
}

func (r *BookingsRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.Booking, error) {
	return r.list(ctx, bson.M{"eventId": eventID})
}

func (r *BookingsRepository) list(ctx context.Context, filter bson.M) ([]domain.Booking, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "bookingDate", Value: -1}}))
	if err != nil {
		r.logger.Error("failed to list bookings", err)
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	var bookings []domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, storeErr(err)
		}
		bookings = append(bookings, bookingFromDoc(doc))
	}
	return bookings, storeErr(cur.Err())
}

func (r *BookingsRepository) Update(ctx context.Context, booking domain.Booking) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": booking.ID}, bookingToDoc(booking))
	if err != nil {
		r.logger.Error("failed to update booking", err)
		return storeErr(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("failed to delete booking", err)
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
