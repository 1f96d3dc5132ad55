package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository using MongoDB.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new instance of mongoWorkoutRepository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.OwnerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout owner ID is required")
	}

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Date.IsZero() {
		workout.Date = now
	}

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves a workout by its ObjectID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// Update replaces the mutable fields of a workout. OwnerID is part of the
// filter, not the update, so ownership can never change through this path.
func (r *mongoWorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	filter := bson.M{"_id": workout.ID, "ownerId": workout.OwnerID}
	update := bson.M{
		"$set": bson.M{
			"title":           workout.Title,
			"date":            workout.Date,
			"durationMinutes": workout.DurationMinutes,
			"notes":           workout.Notes,
			"entries":         workout.Entries,
			"updatedAt":       time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a workout document.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// sortSpec maps an API sort key to a Mongo sort document. Unknown keys fall
// back to newest-date-first.
func sortSpec(sort string) bson.D {
	switch sort {
	case domain.SortDate:
		return bson.D{{Key: "date", Value: 1}}
	case domain.SortDateDesc:
		return bson.D{{Key: "date", Value: -1}}
	case domain.SortDuration:
		return bson.D{{Key: "durationMinutes", Value: 1}}
	case domain.SortDurationDesc:
		return bson.D{{Key: "durationMinutes", Value: -1}}
	default:
		return bson.D{{Key: "date", Value: -1}}
	}
}

// ListByOwner retrieves one page of an owner's workouts plus the total number
// of documents matching the filter. A page beyond the end yields an empty
// slice and no error.
func (r *mongoWorkoutRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) ([]domain.Workout, int64, error) {
	query := bson.M{"ownerId": ownerID}
	if filter.Search != "" {
		// Case-insensitive substring match; quote the input so user text can't
		// inject regex metacharacters.
		query["title"] = bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(sortSpec(filter.Sort)).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, 0, err
	}
	return workouts, total, nil
}

// DeleteByOwner removes every workout belonging to an owner. Used when an
// admin deletes the account.
func (r *mongoWorkoutRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"ownerId": ownerID})
	return err
}

// Count returns the total number of workouts across all users.
func (r *mongoWorkoutRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "durationMinutes", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
