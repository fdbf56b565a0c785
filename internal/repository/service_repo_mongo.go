package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/oneservice/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ServiceRepository interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	Insert(ctx context.Context, doc domain.Document) (*domain.InsertAck, error)
	Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.UpdateAck, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
}

type MongoServiceRepository struct {
	coll *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepository{coll: db.Collection(servicesCollection)}
}

func (r *MongoServiceRepository) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Document, error) {
	query := bson.M{}
	if filter.OwnerEmail != "" {
		query[domain.FieldServiceOwnerEmail] = filter.OwnerEmail
	}

	docs, err := findAll(ctx, r.coll, query)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	return docs, nil
}

// GetByID returns nil without an error when no service has the id.
func (r *MongoServiceRepository) GetByID(ctx context.Context, id string) (domain.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc domain.Document
	if err := r.coll.FindOne(ctx, bson.M{domain.FieldID: oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find service %s: %w", id, err)
	}
	return doc, nil
}

func (r *MongoServiceRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return insertAck(res), nil
}

// Update overwrites the five editable fields and creates the document when
// the id does not exist yet.
func (r *MongoServiceRepository) Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.UpdateAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{domain.FieldID: oid},
		bson.M{"$set": update.Fields()},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("update service %s: %w", id, err)
	}
	return updateAck(res), nil
}

func (r *MongoServiceRepository) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{domain.FieldID: oid})
	if err != nil {
		return nil, fmt.Errorf("delete service %s: %w", id, err)
	}
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

var _ ServiceRepository = (*MongoServiceRepository)(nil)
