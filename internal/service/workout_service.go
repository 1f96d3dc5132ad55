package service

import (
	"context"
	"errors"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultWorkoutPageLimit = 10
	maxWorkoutPageLimit     = 100
)

// WorkoutPage is one page of a workout list query.
type WorkoutPage struct {
	Workouts   []domain.Workout `json:"workouts"`
	TotalPages int              `json:"totalPages"`
}

// WorkoutService implements owner-scoped workout CRUD. Every mutating
// operation verifies that the caller owns the workout; ownership is fixed at
// creation.
type WorkoutService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error)
	Get(ctx context.Context, callerID, workoutID primitive.ObjectID) (*domain.Workout, error)
	Update(ctx context.Context, callerID, workoutID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error)
	Delete(ctx context.Context, callerID, workoutID primitive.ObjectID) error
	List(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) (*WorkoutPage, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// Create logs a new workout owned by ownerID.
func (s *workoutService) Create(ctx context.Context, ownerID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error) {
	if workout.Title == "" || workout.DurationMinutes <= 0 {
		return nil, ErrValidation
	}

	workout.ID = primitive.NilObjectID
	workout.OwnerID = ownerID

	id, err := s.workoutRepo.Create(ctx, &workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id
	return &workout, nil
}

// Get fetches one workout, requiring the caller to be the owner.
func (s *workoutService) Get(ctx context.Context, callerID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if workout.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return workout, nil
}

// Update replaces the mutable fields of an owned workout. The stored owner is
// never changed.
func (s *workoutService) Update(ctx context.Context, callerID, workoutID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error) {
	if workout.Title == "" || workout.DurationMinutes <= 0 {
		return nil, ErrValidation
	}

	existing, err := s.Get(ctx, callerID, workoutID)
	if err != nil {
		return nil, err
	}

	existing.Title = workout.Title
	existing.Date = workout.Date
	existing.DurationMinutes = workout.DurationMinutes
	existing.Notes = workout.Notes
	existing.Entries = workout.Entries

	if err := s.workoutRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes an owned workout. A foreign workout yields ErrForbidden and
// is left untouched.
func (s *workoutService) Delete(ctx context.Context, callerID, workoutID primitive.ObjectID) error {
	if _, err := s.Get(ctx, callerID, workoutID); err != nil {
		return err
	}
	return s.workoutRepo.Delete(ctx, workoutID)
}

// List returns one page of the owner's workouts. The page is clamped to >= 1
// and the limit to 1..100; a page past the last one returns an empty slice
// with the true page count, not an error.
func (s *workoutService) List(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) (*WorkoutPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultWorkoutPageLimit
	}
	if filter.Limit > maxWorkoutPageLimit {
		filter.Limit = maxWorkoutPageLimit
	}

	workouts, total, err := s.workoutRepo.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &WorkoutPage{
		Workouts:   workouts,
		TotalPages: totalPages,
	}, nil
}
