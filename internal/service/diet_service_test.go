package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDietCreateValidation(t *testing.T) {
	svc := NewDietService(memory.NewDietRepository())
	owner := primitive.NewObjectID()

	cases := []domain.DietEntry{
		{MealType: domain.MealLunch, Description: ""},
		{MealType: domain.MealType("brunch"), Description: "Eggs"},
	}
	for _, entry := range cases {
		if _, err := svc.Create(context.Background(), owner, entry); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%+v): expected ErrValidation, got %v", entry, err)
		}
	}
}

func TestDietListDateRange(t *testing.T) {
	svc := NewDietService(memory.NewDietRepository())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	base := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, owner, domain.DietEntry{
			Date:        base.AddDate(0, 0, i),
			MealType:    domain.MealLunch,
			Description: "Meal",
			Calories:    500,
		})
		if err != nil {
			t.Fatalf("seeding entry %d: %v", i, err)
		}
	}

	entries, err := svc.List(ctx, owner, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("range matches: got %d want 3", len(entries))
	}

	all, err := svc.List(ctx, owner, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("List without range failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("unbounded matches: got %d want 5", len(all))
	}
}

func TestDietOwnership(t *testing.T) {
	svc := NewDietService(memory.NewDietRepository())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	entry, err := svc.Create(ctx, owner, domain.DietEntry{MealType: domain.MealDinner, Description: "Chicken and rice"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stranger := primitive.NewObjectID()
	if _, err := svc.Get(ctx, stranger, entry.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Get by stranger: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, stranger, entry.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete by stranger: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Get(ctx, owner, entry.ID); err != nil {
		t.Errorf("entry gone after forbidden delete: %v", err)
	}
}
