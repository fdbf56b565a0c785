package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/oneservice/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Document, error)
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertAck, error)
	UpdateStatus(ctx context.Context, id string, status any) (*domain.UpdateAck, error)
}

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoBookingRepository{coll: db.Collection(bookingsCollection)}
}

func (r *MongoBookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Document, error) {
	query := bson.M{}
	if filter.CustomerEmail != "" {
		query[domain.FieldBookingEmail] = filter.CustomerEmail
	}
	if filter.ProviderEmail != "" {
		query[domain.FieldServiceProviderEmail] = filter.ProviderEmail
	}
	if filter.Status != "" {
		query[domain.FieldBookingStatus] = filter.Status
	}

	docs, err := findAll(ctx, r.coll, query)
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	return docs, nil
}

func (r *MongoBookingRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}
	return insertAck(res), nil
}

// UpdateStatus sets only the status field. A missing booking yields a zero
// matched count, not an error.
func (r *MongoBookingRepository) UpdateStatus(ctx context.Context, id string, status any) (*domain.UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{domain.FieldID: oid},
		bson.M{"$set": bson.M{domain.FieldBookingStatus: status}},
	)
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", id, err)
	}
	return updateAck(res), nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
