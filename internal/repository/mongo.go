package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/oneservice/config"
	"github.com/Domenick1991/oneservice/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	servicesCollection = "services"
	bookingsCollection = "bookings"

	defaultConnectTimeout = 10 * time.Second
)

// Connect opens the process-wide client and verifies it with a ping against
// the admin database. The returned client is shared by all repositories.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := Ping(ctx, client, cfg.ConnectTimeout()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	log.Println("Pinged your deployment. Connection successful.")

	return client, nil
}

func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]domain.Document, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func insertAck(res *mongo.InsertOneResult) *domain.InsertAck {
	return &domain.InsertAck{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateAck(res *mongo.UpdateResult) *domain.UpdateAck {
	return &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
