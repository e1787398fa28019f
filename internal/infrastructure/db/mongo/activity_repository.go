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

	"github.com/sitewise/mis-backend/internal/core/domain"
)

const activitiesCollection = "project_activities"

// ActivityRepository persists project activities in MongoDB.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

// EnsureIndexes creates the owner index every list query filters on.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.ProjectActivity) (*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if activity.ID == "" {
		activity.ID = primitive.NewObjectID().Hex()
	}

	if _, err := r.coll.InsertOne(ctx, activity); err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return activity, nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var activity domain.ProjectActivity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&activity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return &activity, nil
}

func (r *ActivityRepository) FindAllByUser(ctx context.Context, userID string) ([]*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []*domain.ProjectActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain.ProjectActivity) (*domain.ProjectActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": activity.ID}, activity)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrActivityNotFound
	}
	return activity, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}
