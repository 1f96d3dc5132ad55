package service

import (
	"context"
	"errors"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExerciseService manages a user's personal exercise library.
type ExerciseService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error)
	Get(ctx context.Context, callerID, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	Update(ctx context.Context, callerID, exerciseID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error)
	Delete(ctx context.Context, callerID, exerciseID primitive.ObjectID) error
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) Create(ctx context.Context, ownerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, ErrValidation
	}

	exercise.ID = primitive.NilObjectID
	exercise.OwnerID = ownerID

	id, err := s.exerciseRepo.Create(ctx, &exercise)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	return &exercise, nil
}

func (s *exerciseService) Get(ctx context.Context, callerID, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if exercise.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return exercise, nil
}

func (s *exerciseService) Update(ctx context.Context, callerID, exerciseID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, ErrValidation
	}

	existing, err := s.Get(ctx, callerID, exerciseID)
	if err != nil {
		return nil, err
	}

	existing.Name = exercise.Name
	existing.MuscleGroup = exercise.MuscleGroup
	existing.Description = exercise.Description
	existing.Difficulty = exercise.Difficulty

	if err := s.exerciseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *exerciseService) Delete(ctx context.Context, callerID, exerciseID primitive.ObjectID) error {
	if _, err := s.Get(ctx, callerID, exerciseID); err != nil {
		return err
	}
	return s.exerciseRepo.Delete(ctx, exerciseID)
}

func (s *exerciseService) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListByOwner(ctx, ownerID)
}
