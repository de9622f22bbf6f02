package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const sessionsCollection = "sessions"

type SessionRepository struct {
	collection *mongo.Collection
}

type sessionDoc struct {
	Token     string    `bson:"token"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(database *mongo.Database) *SessionRepository {
	return &SessionRepository{collection: database.Collection(sessionsCollection)}
}

func (r *SessionRepository) Insert(ctx context.Context, session domain.Session) error {
	_, err := r.collection.InsertOne(ctx, sessionDoc{
		Token:     session.Token,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	return err
}

func (r *SessionRepository) GetByToken(ctx context.Context, token string) (domain.Session, error) {
	var doc sessionDoc
	err := r.collection.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Token:     doc.Token,
		UserID:    doc.UserID,
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"token": token})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
