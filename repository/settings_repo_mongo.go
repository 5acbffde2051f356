package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mjtoys/models"
)

type MongoSettingsRepo struct {
	DB *mongo.Client
}

func NewMongoSettingsRepo(db *mongo.Client) *MongoSettingsRepo {
	return &MongoSettingsRepo{DB: db}
}

type settingsDoc struct {
	ID        string                 `bson:"_id"`
	Data      models.PartialSettings `bson:"data"`
	UpdatedAt time.Time              `bson:"updated_at"`
}

func (r *MongoSettingsRepo) GetSettings() (models.PartialSettings, error) {
	ctx := context.Background()

	var doc settingsDoc
	err := r.DB.Database(mongoDatabase).Collection("settings").
		FindOne(ctx, bson.M{"_id": settingKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.Data, nil
}

func (r *MongoSettingsRepo) SaveSettings(settings models.PartialSettings) error {
	ctx := context.Background()

	doc := settingsDoc{ID: settingKey, Data: settings, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.DB.Database(mongoDatabase).Collection("settings").
		ReplaceOne(ctx, bson.M{"_id": settingKey}, doc, opts)
	return err
}
