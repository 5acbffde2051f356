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

const mongoDatabase = "mjtoys"

type MongoDocumentRepo struct {
	DB *mongo.Client
}

func NewMongoDocumentRepo(db *mongo.Client) *MongoDocumentRepo {
	return &MongoDocumentRepo{DB: db}
}

func (r *MongoDocumentRepo) SaveDocument(doc *models.Document) error {
	ctx := context.Background()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	doc.UpdatedAt = doc.CreatedAt

	_, err := r.DB.Database(mongoDatabase).Collection("documents").InsertOne(ctx, doc)
	return err
}

// GetDocuments returns all history records, newest first.
func (r *MongoDocumentRepo) GetDocuments() ([]*models.Document, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.DB.Database(mongoDatabase).Collection("documents").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Document
	for cur.Next(ctx) {
		var doc models.Document
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, &doc)
	}
	return out, cur.Err()
}

func (r *MongoDocumentRepo) GetDocumentByID(id string) (*models.Document, error) {
	ctx := context.Background()

	var doc models.Document
	err := r.DB.Database(mongoDatabase).Collection("documents").
		FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}
