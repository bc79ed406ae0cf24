package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hemobank/internal/hospital"
)

// HospitalsCollection is the MongoDB collection name for hospital documents.
const HospitalsCollection = "hospitals"

// MongoStore persists hospital records as documents in a MongoDB collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(HospitalsCollection)}
}

func (s *MongoStore) Insert(ctx context.Context, record hospital.Hospital) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]hospital.Hospital, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var records []hospital.Hospital
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode hospitals: %w", err)
	}
	return records, nil
}
