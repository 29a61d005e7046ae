package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SettingRepository reads and writes the singleton store settings document.
type SettingRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewSettingRepository(db *mongo.Database) *SettingRepository {
	return &SettingRepository{coll: db.Collection(CollectionSettings), now: time.Now}
}

// Upsert sets each key of fields under "setting" on the store settings
// document, creating the document if it does not exist yet. Keys not named
// in fields are left untouched.
func (r *SettingRepository) Upsert(ctx context.Context, fields map[string]interface{}) (*models.Setting, error) {
	if len(fields) == 0 {
		return nil, errors.New("no setting fields to update")
	}

	now := r.now()
	set := bson.M{"updatedAt": now}
	for k, v := range fields {
		set["setting."+k] = v
	}

	var setting models.Setting
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": models.StoreSettingName},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&setting)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", models.StoreSettingName, err)
	}
	return &setting, nil
}

func (r *SettingRepository) Get(ctx context.Context) (*models.Setting, error) {
	var setting models.Setting
	err := r.coll.FindOne(ctx, bson.M{"name": models.StoreSettingName}).Decode(&setting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
