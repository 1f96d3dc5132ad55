package service

import (
	"context"
	"errors"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemplateService manages reusable workout templates. Instantiate copies a
// template into a fresh workout dated now.
type TemplateService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, tpl domain.WorkoutTemplate) (*domain.WorkoutTemplate, error)
	Get(ctx context.Context, callerID, templateID primitive.ObjectID) (*domain.WorkoutTemplate, error)
	Update(ctx context.Context, callerID, templateID primitive.ObjectID, tpl domain.WorkoutTemplate) (*domain.WorkoutTemplate, error)
	Delete(ctx context.Context, callerID, templateID primitive.ObjectID) error
	List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutTemplate, error)
	Instantiate(ctx context.Context, callerID, templateID primitive.ObjectID) (*domain.Workout, error)
}

type templateService struct {
	templateRepo repository.TemplateRepository
	workoutRepo  repository.WorkoutRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(templateRepo repository.TemplateRepository, workoutRepo repository.WorkoutRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		workoutRepo:  workoutRepo,
	}
}

func (s *templateService) Create(ctx context.Context, ownerID primitive.ObjectID, tpl domain.WorkoutTemplate) (*domain.WorkoutTemplate, error) {
	if tpl.Name == "" {
		return nil, ErrValidation
	}

	tpl.ID = primitive.NilObjectID
	tpl.OwnerID = ownerID

	id, err := s.templateRepo.Create(ctx, &tpl)
	if err != nil {
		return nil, err
	}
	tpl.ID = id
	return &tpl, nil
}

func (s *templateService) Get(ctx context.Context, callerID, templateID primitive.ObjectID) (*domain.WorkoutTemplate, error) {
	tpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if tpl.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return tpl, nil
}

func (s *templateService) Update(ctx context.Context, callerID, templateID primitive.ObjectID, tpl domain.WorkoutTemplate) (*domain.WorkoutTemplate, error) {
	if tpl.Name == "" {
		return nil, ErrValidation
	}

	existing, err := s.Get(ctx, callerID, templateID)
	if err != nil {
		return nil, err
	}

	existing.Name = tpl.Name
	existing.Description = tpl.Description
	existing.DurationMinutes = tpl.DurationMinutes
	existing.Entries = tpl.Entries

	if err := s.templateRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *templateService) Delete(ctx context.Context, callerID, templateID primitive.ObjectID) error {
	if _, err := s.Get(ctx, callerID, templateID); err != nil {
		return err
	}
	return s.templateRepo.Delete(ctx, templateID)
}

func (s *templateService) List(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.ListByOwner(ctx, ownerID)
}

// Instantiate creates a workout from a template, dated at the moment of the
// call, owned by the caller.
func (s *templateService) Instantiate(ctx context.Context, callerID, templateID primitive.ObjectID) (*domain.Workout, error) {
	tpl, err := s.Get(ctx, callerID, templateID)
	if err != nil {
		return nil, err
	}

	duration := tpl.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	workout := &domain.Workout{
		OwnerID:         callerID,
		Title:           tpl.Name,
		Date:            time.Now().UTC(),
		DurationMinutes: duration,
		Notes:           tpl.Description,
		Entries:         append([]domain.WorkoutEntry(nil), tpl.Entries...),
	}

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id
	return workout, nil
}
