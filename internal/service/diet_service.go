package service

import (
	"context"
	"errors"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DietService manages a user's meal log.
type DietService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, entry domain.DietEntry) (*domain.DietEntry, error)
	Get(ctx context.Context, callerID, entryID primitive.ObjectID) (*domain.DietEntry, error)
	Update(ctx context.Context, callerID, entryID primitive.ObjectID, entry domain.DietEntry) (*domain.DietEntry, error)
	Delete(ctx context.Context, callerID, entryID primitive.ObjectID) error
	List(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.DietEntry, error)
}

type dietService struct {
	dietRepo repository.DietRepository
}

// NewDietService creates a new instance of dietService.
func NewDietService(dietRepo repository.DietRepository) DietService {
	return &dietService{dietRepo: dietRepo}
}

func (s *dietService) Create(ctx context.Context, ownerID primitive.ObjectID, entry domain.DietEntry) (*domain.DietEntry, error) {
	if entry.Description == "" || !domain.ValidMealType(entry.MealType) {
		return nil, ErrValidation
	}

	entry.ID = primitive.NilObjectID
	entry.OwnerID = ownerID

	id, err := s.dietRepo.Create(ctx, &entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return &entry, nil
}

func (s *dietService) Get(ctx context.Context, callerID, entryID primitive.ObjectID) (*domain.DietEntry, error) {
	entry, err := s.dietRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if entry.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return entry, nil
}

func (s *dietService) Update(ctx context.Context, callerID, entryID primitive.ObjectID, entry domain.DietEntry) (*domain.DietEntry, error) {
	if entry.Description == "" || !domain.ValidMealType(entry.MealType) {
		return nil, ErrValidation
	}

	existing, err := s.Get(ctx, callerID, entryID)
	if err != nil {
		return nil, err
	}

	existing.Date = entry.Date
	existing.MealType = entry.MealType
	existing.Description = entry.Description
	existing.Calories = entry.Calories
	existing.ProteinGrams = entry.ProteinGrams
	existing.CarbsGrams = entry.CarbsGrams
	existing.FatGrams = entry.FatGrams

	if err := s.dietRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *dietService) Delete(ctx context.Context, callerID, entryID primitive.ObjectID) error {
	if _, err := s.Get(ctx, callerID, entryID); err != nil {
		return err
	}
	return s.dietRepo.Delete(ctx, entryID)
}

func (s *dietService) List(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.DietEntry, error) {
	return s.dietRepo.ListByOwner(ctx, ownerID, from, to)
}
