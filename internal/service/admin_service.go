package service

import (
	"context"
	"errors"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCannotDeleteSelf = errors.New("admins cannot delete their own account")
)

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []domain.User `json:"users"`
	TotalPages int           `json:"totalPages"`
}

// Stats summarizes the system for the admin dashboard.
type Stats struct {
	Users    int64 `json:"users"`
	Trainers int64 `json:"trainers"`
	Workouts int64 `json:"workouts"`
}

// AdminService implements the admin-only management operations. Deleting a
// user cascades to everything that user owns.
type AdminService interface {
	ListUsers(ctx context.Context, page, limit int) (*UserPage, error)
	DeleteUser(ctx context.Context, adminID, userID primitive.ObjectID) error
	UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role domain.Role) (*domain.User, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type adminService struct {
	userRepo     repository.UserRepository
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	templateRepo repository.TemplateRepository
	dietRepo     repository.DietRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	templateRepo repository.TemplateRepository,
	dietRepo repository.DietRepository,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		templateRepo: templateRepo,
		dietRepo:     dietRepo,
	}
}

// ListUsers returns one page of all registered users.
func (s *adminService) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	users, total, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &UserPage{Users: users, TotalPages: totalPages}, nil
}

// DeleteUser removes a user and all of their owned documents. There is no
// cross-collection transaction here; the user document goes first so a partial
// failure leaves only orphaned owned data, never a usable account.
func (s *adminService) DeleteUser(ctx context.Context, adminID, userID primitive.ObjectID) error {
	if adminID == userID {
		return ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.workoutRepo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.exerciseRepo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	if err := s.templateRepo.DeleteByOwner(ctx, userID); err != nil {
		return err
	}
	return s.dietRepo.DeleteByOwner(ctx, userID)
}

// UpdateUserRole changes a user's role. A trainer record gains an empty
// TrainerInfo so the directory projection has something to render.
func (s *adminService) UpdateUserRole(ctx context.Context, userID primitive.ObjectID, role domain.Role) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrValidation
	}

	if err := s.userRepo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsTrainer() && user.TrainerInfo == nil {
		user.TrainerInfo = &domain.TrainerInfo{}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	user.PasswordHash = ""
	return user, nil
}

// GetStats returns headline counts for the admin dashboard.
func (s *adminService) GetStats(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	trainers, err := s.userRepo.ListByRole(ctx, domain.RoleTrainer)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		Users:    users,
		Trainers: int64(len(trainers)),
		Workouts: workouts,
	}, nil
}
