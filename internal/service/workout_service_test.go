package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository/memory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedWorkouts(t *testing.T, svc WorkoutService, ownerID primitive.ObjectID, n int) {
	t.Helper()
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), ownerID, domain.Workout{
			Title:           fmt.Sprintf("Session %02d", i+1),
			Date:            base.AddDate(0, 0, i),
			DurationMinutes: 30 + i,
		})
		if err != nil {
			t.Fatalf("seeding workout %d: %v", i, err)
		}
	}
}

func TestWorkoutCreateValidation(t *testing.T) {
	svc := NewWorkoutService(memory.NewWorkoutRepository())
	ownerID := primitive.NewObjectID()

	cases := []domain.Workout{
		{Title: "", DurationMinutes: 45},
		{Title: "Leg day", DurationMinutes: 0},
		{Title: "Leg day", DurationMinutes: -5},
	}
	for _, w := range cases {
		if _, err := svc.Create(context.Background(), ownerID, w); !errors.Is(err, ErrValidation) {
			t.Errorf("Create(%+v): expected ErrValidation, got %v", w, err)
		}
	}
}

func TestWorkoutOwnership(t *testing.T) {
	repo := memory.NewWorkoutRepository()
	svc := NewWorkoutService(repo)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	created, err := svc.Create(ctx, owner, domain.Workout{Title: "Push day", DurationMinutes: 60})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(ctx, stranger, created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Get by stranger: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, stranger, created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete by stranger: expected ErrForbidden, got %v", err)
	}

	// The failed delete must not have removed the document.
	got, err := svc.Get(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("workout gone after forbidden delete: %v", err)
	}
	if got.Title != "Push day" {
		t.Errorf("workout mutated after forbidden delete: %+v", got)
	}

	if err := svc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("Delete by owner failed: %v", err)
	}
	if _, err := svc.Get(ctx, owner, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestWorkoutUpdateKeepsOwner(t *testing.T) {
	svc := NewWorkoutService(memory.NewWorkoutRepository())
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.Create(ctx, owner, domain.Workout{Title: "Intervals", DurationMinutes: 20})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, owner, created.ID, domain.Workout{
		Title:           "Long intervals",
		DurationMinutes: 40,
		OwnerID:         primitive.NewObjectID(), // must be ignored
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.OwnerID != owner {
		t.Errorf("owner changed on update: got %s want %s", updated.OwnerID.Hex(), owner.Hex())
	}
	if updated.Title != "Long intervals" || updated.DurationMinutes != 40 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestWorkoutListPagination(t *testing.T) {
	svc := NewWorkoutService(memory.NewWorkoutRepository())
	ownerID := primitive.NewObjectID()
	seedWorkouts(t, svc, ownerID, 25)
	ctx := context.Background()

	page, err := svc.List(ctx, ownerID, domain.WorkoutFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Workouts) != 10 {
		t.Errorf("page 1 size: got %d want 10", len(page.Workouts))
	}
	if page.TotalPages != 3 {
		t.Errorf("totalPages: got %d want 3", page.TotalPages)
	}

	last, err := svc.List(ctx, ownerID, domain.WorkoutFilter{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("List last page failed: %v", err)
	}
	if len(last.Workouts) != 5 {
		t.Errorf("last page size: got %d want 5", len(last.Workouts))
	}

	// Past the end is an empty page, not an error, and still reports the
	// true page count.
	beyond, err := svc.List(ctx, ownerID, domain.WorkoutFilter{Page: 9, Limit: 10})
	if err != nil {
		t.Fatalf("List out-of-range page failed: %v", err)
	}
	if len(beyond.Workouts) != 0 {
		t.Errorf("out-of-range page size: got %d want 0", len(beyond.Workouts))
	}
	if beyond.TotalPages != 3 {
		t.Errorf("out-of-range totalPages: got %d want 3", beyond.TotalPages)
	}
}

func TestWorkoutListClampsFilter(t *testing.T) {
	svc := NewWorkoutService(memory.NewWorkoutRepository())
	ownerID := primitive.NewObjectID()
	seedWorkouts(t, svc, ownerID, 15)

	// Page 0 and a negative limit fall back to page 1 with the default size.
	page, err := svc.List(context.Background(), ownerID, domain.WorkoutFilter{Page: 0, Limit: -3})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Workouts) != 10 {
		t.Errorf("clamped page size: got %d want 10", len(page.Workouts))
	}
	if page.TotalPages != 2 {
		t.Errorf("clamped totalPages: got %d want 2", page.TotalPages)
	}

	// An oversized limit is capped at 100.
	big, err := svc.List(context.Background(), ownerID, domain.WorkoutFilter{Page: 1, Limit: 100000})
	if err != nil {
		t.Fatalf("List with huge limit failed: %v", err)
	}
	if big.TotalPages != 1 {
		t.Errorf("huge limit totalPages: got %d want 1", big.TotalPages)
	}
}

func TestWorkoutListSearchAndSort(t *testing.T) {
	svc := NewWorkoutService(memory.NewWorkoutRepository())
	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	day := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)
	for i, w := range []domain.Workout{
		{Title: "Morning Run", DurationMinutes: 40},
		{Title: "Evening run", DurationMinutes: 25},
		{Title: "Deadlifts", DurationMinutes: 55},
	} {
		w.Date = day.AddDate(0, 0, i)
		if _, err := svc.Create(ctx, ownerID, w); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	// Search is case-insensitive on the title.
	page, err := svc.List(ctx, ownerID, domain.WorkoutFilter{Search: "run"})
	if err != nil {
		t.Fatalf("List with search failed: %v", err)
	}
	if len(page.Workouts) != 2 {
		t.Fatalf("search matches: got %d want 2", len(page.Workouts))
	}

	sorted, err := svc.List(ctx, ownerID, domain.WorkoutFilter{Sort: domain.SortDuration})
	if err != nil {
		t.Fatalf("List with sort failed: %v", err)
	}
	durations := make([]int, 0, len(sorted.Workouts))
	for _, w := range sorted.Workouts {
		durations = append(durations, w.DurationMinutes)
	}
	for i := 1; i < len(durations); i++ {
		if durations[i-1] > durations[i] {
			t.Errorf("durations not ascending: %v", durations)
			break
		}
	}
}
