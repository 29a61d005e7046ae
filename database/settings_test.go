package database

import (
	"context"
	"errors"
	"testing"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSettingRepositoryUpsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns document after update", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: models.StoreSettingName},
			{Key: "setting", Value: bson.D{
				{Key: models.SettingStripeKey, Value: "pk_test_1"},
				{Key: models.SettingStripeStatus, Value: true},
			}},
		}}))

		got, err := NewSettingRepository(mt.DB).Upsert(context.Background(), map[string]interface{}{
			models.SettingStripeKey:    "pk_test_1",
			models.SettingStripeStatus: true,
		})
		if err != nil {
			mt.Fatalf("Upsert() error = %v", err)
		}
		if got.Name != models.StoreSettingName {
			mt.Fatalf("name = %q", got.Name)
		}
		if got.GetString(models.SettingStripeKey) != "pk_test_1" || !got.GetBool(models.SettingStripeStatus) {
			mt.Fatalf("values = %v", got.Values)
		}
	})

	mt.Run("no fields", func(mt *mtest.T) {
		if _, err := NewSettingRepository(mt.DB).Upsert(context.Background(), nil); err == nil {
			mt.Fatal("Upsert(nil) error = nil")
		}
	})

	mt.Run("storage error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := NewSettingRepository(mt.DB).Upsert(context.Background(), map[string]interface{}{"k": "v"})
		if err == nil {
			mt.Fatal("Upsert() error = nil, want storage error")
		}
	})
}

func TestSettingRepositoryGetMissing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + "." + CollectionSettings
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		if _, err := NewSettingRepository(mt.DB).Get(context.Background()); !errors.Is(err, ErrNotFound) {
			mt.Fatalf("Get() error = %v, want ErrNotFound", err)
		}
	})
}
