package service

import (
	"context"
	"errors"
	"testing"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type adminFixture struct {
	svc       AdminService
	users     *memory.UserRepository
	workouts  *memory.WorkoutRepository
	exercises *memory.ExerciseRepository
	templates *memory.TemplateRepository
	diet      *memory.DietRepository
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users:     memory.NewUserRepository(),
		workouts:  memory.NewWorkoutRepository(),
		exercises: memory.NewExerciseRepository(),
		templates: memory.NewTemplateRepository(),
		diet:      memory.NewDietRepository(),
	}
	f.svc = NewAdminService(f.users, f.workouts, f.exercises, f.templates, f.diet)
	return f
}

func TestAdminDeleteUserCascades(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	admin := domain.User{Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
	adminID, _ := f.users.Create(ctx, &admin)

	victim := domain.User{Name: "Jane", Email: "jane@example.com", Role: domain.RoleClient}
	victimID, _ := f.users.Create(ctx, &victim)

	if _, err := f.workouts.Create(ctx, &domain.Workout{OwnerID: victimID, Title: "Push", DurationMinutes: 45}); err != nil {
		t.Fatalf("seeding workout: %v", err)
	}
	if _, err := f.exercises.Create(ctx, &domain.Exercise{OwnerID: victimID, Name: "Bench press"}); err != nil {
		t.Fatalf("seeding exercise: %v", err)
	}
	if _, err := f.diet.Create(ctx, &domain.DietEntry{OwnerID: victimID, MealType: domain.MealBreakfast, Description: "Oats"}); err != nil {
		t.Fatalf("seeding diet entry: %v", err)
	}

	if err := f.svc.DeleteUser(ctx, adminID, victimID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := f.users.GetByID(ctx, victimID); err == nil {
		t.Error("user still present after delete")
	}
	if workouts, _, _ := f.workouts.ListByOwner(ctx, victimID, domain.WorkoutFilter{Page: 1, Limit: 10}); len(workouts) != 0 {
		t.Errorf("workouts survived cascade: %d left", len(workouts))
	}
	if exercises, _ := f.exercises.ListByOwner(ctx, victimID); len(exercises) != 0 {
		t.Errorf("exercises survived cascade: %d left", len(exercises))
	}
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	admin := domain.User{Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
	adminID, _ := f.users.Create(ctx, &admin)

	if err := f.svc.DeleteUser(ctx, adminID, adminID); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Errorf("expected ErrCannotDeleteSelf, got %v", err)
	}
	if _, err := f.users.GetByID(ctx, adminID); err != nil {
		t.Errorf("admin account removed by refused delete: %v", err)
	}
}

func TestAdminDeleteUnknownUser(t *testing.T) {
	f := newAdminFixture()

	err := f.svc.DeleteUser(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminUpdateUserRole(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	user := domain.User{Name: "Jane", Email: "jane@example.com", Role: domain.RoleClient}
	userID, _ := f.users.Create(ctx, &user)

	promoted, err := f.svc.UpdateUserRole(ctx, userID, domain.RoleTrainer)
	if err != nil {
		t.Fatalf("UpdateUserRole failed: %v", err)
	}
	if promoted.Role != domain.RoleTrainer {
		t.Errorf("role: got %q want %q", promoted.Role, domain.RoleTrainer)
	}
	if promoted.TrainerInfo == nil {
		t.Error("promotion to trainer should initialize TrainerInfo")
	}

	if _, err := f.svc.UpdateUserRole(ctx, userID, domain.Role("superuser")); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestAdminListUsersAndStats(t *testing.T) {
	f := newAdminFixture()
	ctx := context.Background()

	for _, u := range []domain.User{
		{Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, PasswordHash: "hash"},
		{Name: "Coach", Email: "coach@example.com", Role: domain.RoleTrainer, PasswordHash: "hash"},
		{Name: "Jane", Email: "jane@example.com", Role: domain.RoleClient, PasswordHash: "hash"},
	} {
		user := u
		id, _ := f.users.Create(ctx, &user)
		if u.Role == domain.RoleClient {
			f.workouts.Create(ctx, &domain.Workout{OwnerID: id, Title: "Run", DurationMinutes: 30})
		}
	}

	page, err := f.svc.ListUsers(ctx, 1, 2)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(page.Users) != 2 || page.TotalPages != 2 {
		t.Errorf("page: got %d users, %d pages, want 2 and 2", len(page.Users), page.TotalPages)
	}
	for _, u := range page.Users {
		if u.PasswordHash != "" {
			t.Errorf("password hash leaked for %s", u.Email)
		}
	}

	stats, err := f.svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.Users != 3 || stats.Trainers != 1 || stats.Workouts != 1 {
		t.Errorf("stats: %+v", stats)
	}
}
