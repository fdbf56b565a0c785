package repository

import (
	"context"
	"testing"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var badValue = mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}

func TestServiceRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("all services", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.services", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "serviceName", Value: "Cleaning"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "serviceName", Value: "Plumbing"}},
		))

		docs, err := repo.List(context.Background(), domain.ServiceFilter{})
		require.NoError(mt, err)
		require.Len(mt, docs, 2)
		assert.Equal(mt, id1, docs[0]["_id"])
		assert.Equal(mt, "Plumbing", docs[1]["serviceName"])

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		_, err = filter.LookupErr(domain.FieldServiceOwnerEmail)
		assert.Error(mt, err, "unfiltered listing must not send an owner filter")
	})

	mt.Run("by owner email", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.services", mtest.FirstBatch))

		docs, err := repo.List(context.Background(), domain.ServiceFilter{OwnerEmail: "owner@example.com"})
		require.NoError(mt, err)
		assert.NotNil(mt, docs)
		assert.Empty(mt, docs)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		assert.Equal(mt, "owner@example.com", filter.Lookup(domain.FieldServiceOwnerEmail).StringValue())
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(badValue))

		_, err := repo.List(context.Background(), domain.ServiceFilter{})
		assert.Error(mt, err)
	})
}

func TestServiceRepository_GetByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.services", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "serviceName", Value: "Cleaning"}, {Key: "servicePrice", Value: 40}},
		))

		doc, err := repo.GetByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, doc["_id"])
		assert.Equal(mt, "Cleaning", doc["serviceName"])
		assert.EqualValues(mt, 40, doc["servicePrice"])
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.services", mtest.FirstBatch))

		doc, err := repo.GetByID(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Nil(mt, doc)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)

		_, err := repo.GetByID(context.Background(), "not-an-id")
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
		assert.Nil(mt, mt.GetStartedEvent(), "no command must reach the store")
	})
}

func TestServiceRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		ack, err := repo.Insert(context.Background(), domain.Document{"serviceName": "Cleaning", "servicePrice": 40.0})
		require.NoError(mt, err)
		assert.True(mt, ack.Acknowledged)
		assert.IsType(mt, primitive.ObjectID{}, ack.InsertedID)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := repo.Insert(context.Background(), domain.Document{"_id": "fixed"})
		assert.Error(mt, err)
	})
}

func TestServiceRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	update := domain.ServiceUpdate{Name: "Deep Cleaning", Price: 60.0, Image: "", Description: "", Area: ""}

	mt.Run("existing document", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		ack, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), update)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), ack.MatchedCount)
		assert.Equal(mt, int64(1), ack.ModifiedCount)
		assert.Nil(mt, ack.UpsertedID)

		stmt := mt.GetStartedEvent().Command.Lookup("updates").Array().Index(0).Value().Document()
		assert.True(mt, stmt.Lookup("upsert").Boolean())
		set := stmt.Lookup("u", "$set").Document()
		assert.Equal(mt, "Deep Cleaning", set.Lookup(domain.FieldServiceName).StringValue())
		assert.Equal(mt, 60.0, set.Lookup(domain.FieldServicePrice).Double())
		elems, err := set.Elements()
		require.NoError(mt, err)
		assert.Len(mt, elems, 5)
	})

	mt.Run("missing document is upserted", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
		))

		ack, err := repo.Update(context.Background(), id.Hex(), update)
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), ack.MatchedCount)
		assert.Equal(mt, int64(1), ack.UpsertedCount)
		assert.Equal(mt, id, ack.UpsertedID)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)

		_, err := repo.Update(context.Background(), "xyz", update)
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
	})
}

func TestServiceRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		ack, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), ack.DeletedCount)
	})

	mt.Run("nothing to delete", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		ack, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, ack.Acknowledged)
		assert.Equal(mt, int64(0), ack.DeletedCount)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewServiceRepository(mt.DB)

		_, err := repo.Delete(context.Background(), "not-an-id")
		assert.ErrorIs(mt, err, domain.ErrInvalidID)
	})
}
