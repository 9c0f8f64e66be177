package handlers

import (
	"context"
	"time"

	"github.com/AnshRaj112/moodtracker-backend/internal/models"
	"github.com/AnshRaj112/moodtracker-backend/internal/services"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubMoodStore records inserts and serves canned lists.
type stubMoodStore struct {
	moods     []models.Mood
	insertErr error
	listErr   error

	inserted  []models.Mood
	gotUserID string
	gotSince  time.Time
	gotLimit  int64
}

func (s *stubMoodStore) Insert(ctx context.Context, mood *models.Mood) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	mood.ID = primitive.NewObjectID()
	mood.CreatedAt = time.Now().UTC()
	s.inserted = append(s.inserted, *mood)
	return nil
}

func (s *stubMoodStore) List(ctx context.Context, userID string, since time.Time, limit int64) ([]models.Mood, error) {
	s.gotUserID = userID
	s.gotSince = since
	s.gotLimit = limit
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.moods, nil
}

// stubSessions accepts any non-empty token as the configured user.
type stubSessions struct {
	user        services.AuthUser
	invalidated []string
}

func (s *stubSessions) Validate(ctx context.Context, token string) (services.AuthUser, bool, error) {
	if token == "" {
		return services.AuthUser{}, false, nil
	}
	return s.user, true, nil
}

func (s *stubSessions) Invalidate(ctx context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	return nil
}

// stubAuth records gateway calls.
type stubAuth struct {
	magicErr   error
	signOutErr error

	emails   []string
	signOuts []string
}

func (s *stubAuth) SendMagicLink(ctx context.Context, email string) error {
	if s.magicErr != nil {
		return s.magicErr
	}
	s.emails = append(s.emails, email)
	return nil
}

func (s *stubAuth) SignOut(ctx context.Context, token string) error {
	s.signOuts = append(s.signOuts, token)
	return s.signOutErr
}

var testUserID = uuid.MustParse("3f6c68ff-62ce-4c2c-a6ba-33ea0d0f2a35")

func newTestSessions() *stubSessions {
	return &stubSessions{
		user: services.AuthUser{ID: testUserID, Email: "user@example.com"},
	}
}
