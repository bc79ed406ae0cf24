package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"hemobank/internal/donor"
	"hemobank/pkg/platform/sentinel"
)

// DonorsCollection is the MongoDB collection name for donor documents.
const DonorsCollection = "donors"

// MongoStore persists donor records as self-contained documents in a
// MongoDB collection, the original layout of this system.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{collection: db.Collection(DonorsCollection)}
}

func (s *MongoStore) Insert(ctx context.Context, record donor.Donor) error {
	if _, err := s.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context) ([]donor.Donor, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer cursor.Close(ctx)

	var records []donor.Donor
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode donors: %w", err)
	}
	return records, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (donor.Donor, error) {
	var record donor.Donor
	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return donor.Donor{}, sentinel.ErrNotFound
		}
		return donor.Donor{}, fmt.Errorf("find donor: %w", err)
	}
	return record, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete donor: %w", err)
	}
	if res.DeletedCount == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
