package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/go-subjects/internal/logger"
)

func TestMongoGetUserByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMongoDB(mt.DB, logger.Nop()), logger.Nop())

		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "school.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Ann"},
				{Key: "age", Value: 20},
				{Key: "email", Value: "ann@example.com"},
			}),
			mtest.CreateCursorResponse(0, "school.users", mtest.NextBatch),
		)

		user, err := repo.GetUserByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
		assert.Equal(mt, "Ann", user.Name)
		assert.Equal(mt, 20, user.Age)
		assert.Equal(mt, "ann@example.com", user.Email)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMongoDB(mt.DB, logger.Nop()), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "school.users", mtest.FirstBatch))

		_, err := repo.GetUserByID(context.Background(), primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, ErrUserNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMongoDB(mt.DB, logger.Nop()), logger.Nop())

		_, err := repo.GetUserByID(context.Background(), "u1")
		require.ErrorIs(mt, err, ErrUserNotFound)
	})
}
