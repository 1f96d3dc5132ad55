package service

import (
	"context"
	"errors"
	"testing"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseCRUD(t *testing.T) {
	svc := NewExerciseService(memory.NewExerciseRepository())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	if _, err := svc.Create(ctx, owner, domain.Exercise{Name: ""}); !errors.Is(err, ErrValidation) {
		t.Errorf("nameless exercise: expected ErrValidation, got %v", err)
	}

	created, err := svc.Create(ctx, owner, domain.Exercise{Name: "Squat", MuscleGroup: "legs"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, owner, created.ID, domain.Exercise{Name: "Back squat", MuscleGroup: "legs"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Back squat" {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(ctx, primitive.NewObjectID(), created.ID, domain.Exercise{Name: "Hack squat"}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign update: expected ErrForbidden, got %v", err)
	}

	list, err := svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Back squat" {
		t.Errorf("list: %+v", list)
	}

	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, owner, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
