package repository

import (
	"context"
	"time"

	"fitfusion/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("duplicate unique field")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, int64, error)
	Count(ctx context.Context) (int64, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error
}

// WorkoutRepository defines the interface for interacting with workout data.
// ListByOwner returns the requested page plus the total number of matching
// documents so the caller can compute page counts.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) ([]domain.Workout, int64, error)
	DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ExerciseRepository defines the interface for the personal exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
	DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error
}

// TemplateRepository defines the interface for workout templates.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *domain.WorkoutTemplate) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutTemplate, error)
	Update(ctx context.Context, tpl *domain.WorkoutTemplate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutTemplate, error)
	DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error
}

// DietRepository defines the interface for diet log entries.
type DietRepository interface {
	Create(ctx context.Context, entry *domain.DietEntry) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietEntry, error)
	Update(ctx context.Context, entry *domain.DietEntry) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.DietEntry, error)
	DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error
}
