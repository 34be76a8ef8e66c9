package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

const maintenanceCollection = "maintenance_events"

type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type mongoMaintenanceEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	StartDate   time.Time          `bson:"start_date"`
	EndDate     *time.Time         `bson:"end_date,omitempty"`
	Type        string             `bson:"type"`
	AuthorID    string             `bson:"author_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (me mongoMaintenanceEvent) toDomain() *domain.MaintenanceEvent {
	return &domain.MaintenanceEvent{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		StartDate:   me.StartDate,
		EndDate:     me.EndDate,
		Type:        domain.MaintenanceEventType(me.Type),
		AuthorID:    me.AuthorID,
		CreatedAt:   me.CreatedAt,
		UpdatedAt:   me.UpdatedAt,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, e *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMaintenanceEvent{
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.UTC(),
		EndDate:     e.EndDate,
		Type:        string(e.Type),
		AuthorID:    e.AuthorID,
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance event: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceEvent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMaintenanceEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var me mongoMaintenanceEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMaintenanceEventNotFound
		}
		return nil, fmt.Errorf("find maintenance event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *MaintenanceRepository) ListAll(ctx context.Context) ([]*domain.MaintenanceEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	return r.list(ctx, bson.M{}, opts)
}

// ListUpcoming returns events that start in the future, end in the future,
// or are open-ended and already running — soonest start first.
func (r *MaintenanceRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.MaintenanceEvent, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"start_date": bson.M{"$gte": now}},
		bson.M{"end_date": bson.M{"$gte": now}},
		bson.M{"end_date": nil, "start_date": bson.M{"$lte": now}},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})
	return r.list(ctx, filter, opts)
}

func (r *MaintenanceRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.MaintenanceEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list maintenance events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.MaintenanceEvent
	for cur.Next(ctx) {
		var me mongoMaintenanceEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode maintenance event: %w", err)
		}
		events = append(events, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate maintenance events: %w", err)
	}
	return events, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, e *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error) {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return nil, domain.ErrMaintenanceEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"title":       e.Title,
		"description": e.Description,
		"start_date":  e.StartDate.UTC(),
		"type":        string(e.Type),
		"updated_at":  e.UpdatedAt.UTC(),
	}
	update := bson.M{"$set": set}
	if e.EndDate != nil {
		set["end_date"] = e.EndDate.UTC()
	} else {
		update["$unset"] = bson.M{"end_date": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update maintenance event: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMaintenanceEventNotFound
	}
	return e, nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMaintenanceEventNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete maintenance event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMaintenanceEventNotFound
	}
	return nil
}

// EnsureIndexes creates the start-date index backing both list orders.
func (r *MaintenanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "start_date", Value: 1}},
	})
	return err
}
