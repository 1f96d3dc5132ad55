// Package memory provides in-memory implementations of the repository
// interfaces. They back unit tests and local development without a running
// MongoDB instance.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is an in-memory repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]domain.User)}
}

// cloneUser returns a copy that shares nothing mutable with the stored
// record, matching a driver that decodes fresh documents per read.
func cloneUser(u domain.User) domain.User {
	if u.TrainerInfo != nil {
		info := *u.TrainerInfo
		info.Specializations = append([]string(nil), u.TrainerInfo.Specializations...)
		info.Certifications = append([]string(nil), u.TrainerInfo.Certifications...)
		u.TrainerInfo = &info
	}
	return u
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := cloneUser(user)
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := cloneUser(user)
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}

	existing.Name = user.Name
	existing.Bio = user.Bio
	existing.Phone = user.Phone
	existing.ProfilePicture = user.ProfilePicture
	existing.Stats = user.Stats
	existing.ShowContactInfo = user.ShowContactInfo
	existing.TrainerInfo = user.TrainerInfo
	existing.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = cloneUser(existing)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []domain.User{}
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, cloneUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, page, limit int) ([]domain.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, cloneUser(user))
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return []domain.User{}, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now().UTC()
	r.users[id] = user
	return nil
}

// WorkoutRepository is an in-memory repository.WorkoutRepository.
type WorkoutRepository struct {
	mu       sync.RWMutex
	workouts map[primitive.ObjectID]domain.Workout
}

// NewWorkoutRepository creates an empty in-memory workout repository.
func NewWorkoutRepository() *WorkoutRepository {
	return &WorkoutRepository{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *WorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	if workout.Date.IsZero() {
		workout.Date = now
	}
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workout, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	w := workout
	return &w, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workouts[workout.ID]
	if !ok || existing.OwnerID != workout.OwnerID {
		return repository.ErrNotFound
	}

	existing.Title = workout.Title
	existing.Date = workout.Date
	existing.DurationMinutes = workout.DurationMinutes
	existing.Notes = workout.Notes
	existing.Entries = workout.Entries
	existing.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = existing
	return nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

func (r *WorkoutRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, filter domain.WorkoutFilter) ([]domain.Workout, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []domain.Workout{}
	for _, workout := range r.workouts {
		if workout.OwnerID != ownerID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(workout.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, workout)
	}

	sort.Slice(matched, func(i, j int) bool {
		switch filter.Sort {
		case domain.SortDate:
			return matched[i].Date.Before(matched[j].Date)
		case domain.SortDuration:
			return matched[i].DurationMinutes < matched[j].DurationMinutes
		case domain.SortDurationDesc:
			return matched[i].DurationMinutes > matched[j].DurationMinutes
		default: // SortDateDesc
			return matched[i].Date.After(matched[j].Date)
		}
	})

	total := int64(len(matched))
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	if start >= len(matched) {
		return []domain.Workout{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *WorkoutRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, workout := range r.workouts {
		if workout.OwnerID == ownerID {
			delete(r.workouts, id)
		}
	}
	return nil
}

func (r *WorkoutRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.workouts)), nil
}

// ExerciseRepository is an in-memory repository.ExerciseRepository.
type ExerciseRepository struct {
	mu        sync.RWMutex
	exercises map[primitive.ObjectID]domain.Exercise
}

// NewExerciseRepository creates an empty in-memory exercise repository.
func NewExerciseRepository() *ExerciseRepository {
	return &ExerciseRepository{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now
	r.exercises[exercise.ID] = *exercise
	return exercise.ID, nil
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercise, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e := exercise
	return &e, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, exercise *domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.exercises[exercise.ID]
	if !ok || existing.OwnerID != exercise.OwnerID {
		return repository.ErrNotFound
	}

	existing.Name = exercise.Name
	existing.MuscleGroup = exercise.MuscleGroup
	existing.Description = exercise.Description
	existing.Difficulty = exercise.Difficulty
	existing.UpdatedAt = time.Now().UTC()
	r.exercises[exercise.ID] = existing
	return nil
}

func (r *ExerciseRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.exercises[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.exercises, id)
	return nil
}

func (r *ExerciseRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exercises := []domain.Exercise{}
	for _, exercise := range r.exercises {
		if exercise.OwnerID == ownerID {
			exercises = append(exercises, exercise)
		}
	}
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	return exercises, nil
}

func (r *ExerciseRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, exercise := range r.exercises {
		if exercise.OwnerID == ownerID {
			delete(r.exercises, id)
		}
	}
	return nil
}

// TemplateRepository is an in-memory repository.TemplateRepository.
type TemplateRepository struct {
	mu        sync.RWMutex
	templates map[primitive.ObjectID]domain.WorkoutTemplate
}

// NewTemplateRepository creates an empty in-memory template repository.
func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{templates: make(map[primitive.ObjectID]domain.WorkoutTemplate)}
}

func (r *TemplateRepository) Create(ctx context.Context, tpl *domain.WorkoutTemplate) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tpl.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now
	r.templates[tpl.ID] = *tpl
	return tpl.ID, nil
}

func (r *TemplateRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t := tpl
	return &t, nil
}

func (r *TemplateRepository) Update(ctx context.Context, tpl *domain.WorkoutTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.templates[tpl.ID]
	if !ok || existing.OwnerID != tpl.OwnerID {
		return repository.ErrNotFound
	}

	existing.Name = tpl.Name
	existing.Description = tpl.Description
	existing.DurationMinutes = tpl.DurationMinutes
	existing.Entries = tpl.Entries
	existing.UpdatedAt = time.Now().UTC()
	r.templates[tpl.ID] = existing
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *TemplateRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.WorkoutTemplate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := []domain.WorkoutTemplate{}
	for _, tpl := range r.templates {
		if tpl.OwnerID == ownerID {
			templates = append(templates, tpl)
		}
	}
	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func (r *TemplateRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, tpl := range r.templates {
		if tpl.OwnerID == ownerID {
			delete(r.templates, id)
		}
	}
	return nil
}

// DietRepository is an in-memory repository.DietRepository.
type DietRepository struct {
	mu      sync.RWMutex
	entries map[primitive.ObjectID]domain.DietEntry
}

// NewDietRepository creates an empty in-memory diet repository.
func NewDietRepository() *DietRepository {
	return &DietRepository{entries: make(map[primitive.ObjectID]domain.DietEntry)}
}

func (r *DietRepository) Create(ctx context.Context, entry *domain.DietEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Date.IsZero() {
		entry.Date = now
	}
	r.entries[entry.ID] = *entry
	return entry.ID, nil
}

func (r *DietRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DietEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	e := entry
	return &e, nil
}

func (r *DietRepository) Update(ctx context.Context, entry *domain.DietEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[entry.ID]
	if !ok || existing.OwnerID != entry.OwnerID {
		return repository.ErrNotFound
	}

	existing.Date = entry.Date
	existing.MealType = entry.MealType
	existing.Description = entry.Description
	existing.Calories = entry.Calories
	existing.ProteinGrams = entry.ProteinGrams
	existing.CarbsGrams = entry.CarbsGrams
	existing.FatGrams = entry.FatGrams
	existing.UpdatedAt = time.Now().UTC()
	r.entries[entry.ID] = existing
	return nil
}

func (r *DietRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *DietRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, from, to time.Time) ([]domain.DietEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []domain.DietEntry{}
	for _, entry := range r.entries {
		if entry.OwnerID != ownerID {
			continue
		}
		if !from.IsZero() && entry.Date.Before(from) {
			continue
		}
		if !to.IsZero() && entry.Date.After(to) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (r *DietRepository) DeleteByOwner(ctx context.Context, ownerID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.entries {
		if entry.OwnerID == ownerID {
			delete(r.entries, id)
		}
	}
	return nil
}
