package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

const loginAttemptsCollection = "login_attempts"

// LoginAttemptRepository is the append-only audit log. Records are never
// updated or deleted by the application.
type LoginAttemptRepository struct {
	coll *mongo.Collection
}

func NewLoginAttemptRepository(db *mongo.Database) *LoginAttemptRepository {
	return &LoginAttemptRepository{coll: db.Collection(loginAttemptsCollection)}
}

type mongoLoginAttempt struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Timestamp           time.Time          `bson:"timestamp"`
	AttemptedIdentifier string             `bson:"attempted_identifier"`
	Success             bool               `bson:"success"`
	UserID              string             `bson:"user_id,omitempty"`
	IPAddress           string             `bson:"ip_address"`
	UserAgent           string             `bson:"user_agent"`
}

func (r *LoginAttemptRepository) Append(ctx context.Context, attempt *domain.LoginAttempt) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLoginAttempt{
		Timestamp:           attempt.Timestamp.UTC(),
		AttemptedIdentifier: attempt.AttemptedIdentifier,
		Success:             attempt.Success,
		UserID:              attempt.UserID,
		IPAddress:           attempt.IPAddress,
		UserAgent:           attempt.UserAgent,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login attempt: %w", err)
	}
	return nil
}

func (r *LoginAttemptRepository) ListRecent(ctx context.Context, limit int) ([]*domain.LoginAttempt, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list login attempts: %w", err)
	}
	defer cur.Close(ctx)

	var attempts []*domain.LoginAttempt
	for cur.Next(ctx) {
		var ma mongoLoginAttempt
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode login attempt: %w", err)
		}
		attempts = append(attempts, &domain.LoginAttempt{
			ID:                  ma.ID.Hex(),
			Timestamp:           ma.Timestamp,
			AttemptedIdentifier: ma.AttemptedIdentifier,
			Success:             ma.Success,
			UserID:              ma.UserID,
			IPAddress:           ma.IPAddress,
			UserAgent:           ma.UserAgent,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate login attempts: %w", err)
	}
	return attempts, nil
}

// EnsureIndexes creates the timestamp index backing the newest-first view.
func (r *LoginAttemptRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}
