package mongo

import (
	"context"
	"errors"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dietCollectionName = "diet_entries"

// mongoDietRepository implements repository.DietRepository using MongoDB.
type mongoDietRepository struct {
	collection *mongo.Collection
}

// NewMongoDietRepository creates a new instance of mongoDietRepository.
func NewMongoDietRepository(db *mongo.Database) repository.DietRepository {
	return &mongoDietRepository{
		collection: db.Collection(dietCollectionName),
	}
}

func (r *mongoDietRepository) Create(ctx context.Context, entry *domain.DietEntry) (primitive.ObjectID, error) {
	if entry.OwnerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("diet entry owner ID is required")
	}

	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Date.IsZero() {
		entry.Date = now
	}

	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

func (r *mongoDietRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietEntry, error) {
	var entry domain.DietEntry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *mongoDietRepository) Update(ctx context.Context, entry *domain.DietEntry) error {
	filter := bson.M{"_id": entry.ID, "ownerId": entry.OwnerID}
	update := bson.M{
		"$set": bson.M{
			"date":         entry.Date,
			"mealType":     entry.MealType,
			"description":  entry.Description,
			"calories":     entry.Calories,
			"proteinGrams": entry.ProteinGrams,
			"carbsGrams":   entry.CarbsGrams,
			"fatGrams":     entry.FatGrams,
			"updatedAt":    time.Now().UTC(),
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

func (r *mongoDietRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListByOwner retrieves an owner's diet entries, optionally bounded to a date
// range. Zero time values leave the corresponding bound open.
func (r *mongoDietRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.DietEntry, error) {
	query := bson.M{"ownerId": ownerID}
	dateRange := bson.M{}
	if !from.IsZero() {
		dateRange["$gte"] = from
	}
	if !to.IsZero() {
		dateRange["$lte"] = to
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []domain.DietEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *mongoDietRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"ownerId": ownerID})
	return err
}

// EnsureDietIndexes creates necessary indexes for the diet entries collection.
func EnsureDietIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
