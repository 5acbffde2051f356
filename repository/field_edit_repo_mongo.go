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

type MongoFieldEditRepo struct {
	DB *mongo.Client
}

func NewMongoFieldEditRepo(db *mongo.Client) *MongoFieldEditRepo {
	return &MongoFieldEditRepo{DB: db}
}

type fieldEditDoc struct {
	ID        string            `bson:"_id"`
	Edits     models.FieldEdits `bson:"edits"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

func (r *MongoFieldEditRepo) SaveFieldEdits(documentID string, edits models.FieldEdits) error {
	ctx := context.Background()

	doc := fieldEditDoc{ID: documentID, Edits: edits, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.DB.Database(mongoDatabase).Collection("field_edits").
		ReplaceOne(ctx, bson.M{"_id": documentID}, doc, opts)
	return err
}

func (r *MongoFieldEditRepo) GetFieldEdits(documentID string) (models.FieldEdits, error) {
	ctx := context.Background()

	var doc fieldEditDoc
	err := r.DB.Database(mongoDatabase).Collection("field_edits").
		FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.FieldEdits{}, nil
		}
		return nil, err
	}
	if doc.Edits == nil {
		doc.Edits = models.FieldEdits{}
	}
	return doc.Edits, nil
}
