package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/AnshRaj112/moodtracker-backend/internal/database"
	"github.com/AnshRaj112/moodtracker-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MoodStore owns all access to the moods collection. Every query is scoped to
// a user id; tenant isolation lives here, not in the callers.
type MoodStore struct {
	collection *mongo.Collection
}

func NewMoodStore(db *database.Mongo) *MoodStore {
	return &MoodStore{
		collection: db.DB.Collection("moods"),
	}
}

// EnsureIndexes creates the index backing the list query (user + created_at desc).
func (s *MoodStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create moods index: %w", err)
	}
	return nil
}

// Insert persists a new entry. ID and CreatedAt are assigned here.
func (s *MoodStore) Insert(ctx context.Context, mood *models.Mood) error {
	mood.ID = primitive.NewObjectID()
	mood.CreatedAt = time.Now().UTC()

	if _, err := s.collection.InsertOne(ctx, mood); err != nil {
		return fmt.Errorf("insert mood: %w", err)
	}
	return nil
}

// List returns the user's entries newest first. A zero since time means no
// window; limit <= 0 means no limit.
func (s *MoodStore) List(ctx context.Context, userID string, since time.Time, limit int64) ([]models.Mood, error) {
	filter := bson.M{"user_id": userID}
	if !since.IsZero() {
		filter["created_at"] = bson.M{"$gte": since}
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find moods: %w", err)
	}
	defer cursor.Close(ctx)

	moods := []models.Mood{}
	if err := cursor.All(ctx, &moods); err != nil {
		return nil, fmt.Errorf("decode moods: %w", err)
	}
	return moods, nil
}
