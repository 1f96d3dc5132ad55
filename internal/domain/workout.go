package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout sort keys accepted by list queries. A leading '-' reverses the order.
const (
	SortDate         = "date"
	SortDateDesc     = "-date"
	SortDuration     = "duration"
	SortDurationDesc = "-duration"
)

// WorkoutEntry is one exercise performed within a workout session.
type WorkoutEntry struct {
	ExerciseName string  `bson:"exerciseName" json:"exerciseName"`
	Sets         int     `bson:"sets,omitempty" json:"sets,omitempty"`
	Reps         int     `bson:"reps,omitempty" json:"reps,omitempty"`
	WeightKg     float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
}

// Workout represents a single logged workout session.
// OwnerID is set at creation and never changes.
type Workout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID         primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Title           string             `bson:"title" json:"title"`
	Date            time.Time          `bson:"date" json:"date"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Entries         []WorkoutEntry     `bson:"entries,omitempty" json:"entries,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutFilter describes a paginated workout list query.
type WorkoutFilter struct {
	Page   int // 1-based
	Limit  int
	Search string // free-text match against the title
	Sort   string // one of the Sort* constants; empty means SortDateDesc
}
