package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"
)

// WorkoutEntry mirrors one exercise performed within a workout.
type WorkoutEntry struct {
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets,omitempty"`
	Reps         int     `json:"reps,omitempty"`
	WeightKg     float64 `json:"weightKg,omitempty"`
}

// Workout mirrors the server's workout resource.
type Workout struct {
	ID              string         `json:"id"`
	OwnerID         string         `json:"ownerId"`
	Title           string         `json:"title"`
	Date            time.Time      `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Notes           string         `json:"notes,omitempty"`
	Entries         []WorkoutEntry `json:"entries,omitempty"`
}

// WorkoutDraft is the payload for creating or updating a workout.
type WorkoutDraft struct {
	Title           string         `json:"title"`
	Date            time.Time      `json:"date,omitempty"`
	DurationMinutes int            `json:"durationMinutes"`
	Notes           string         `json:"notes,omitempty"`
	Entries         []WorkoutEntry `json:"entries,omitempty"`
}

// WorkoutPage is one page of a workout listing.
type WorkoutPage struct {
	Workouts   []Workout `json:"workouts"`
	TotalPages int       `json:"totalPages"`
}

// ListWorkouts fetches one page of the caller's workouts. sort is one of
// "date", "-date", "duration", "-duration"; empty means newest first.
func (c *Client) ListWorkouts(ctx context.Context, page, limit int, search, sort string) (*WorkoutPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	var out WorkoutPage
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/workouts",
		query:  q.Encode(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkout logs a new workout.
func (c *Client) CreateWorkout(ctx context.Context, draft WorkoutDraft) (*Workout, error) {
	body, contentType, err := jsonBody(draft)
	if err != nil {
		return nil, err
	}

	var out Workout
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/workouts",
		body:        body,
		contentType: contentType,
		loadingMsg:  "Saving workout...",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Workout fetches a single workout by ID.
func (c *Client) Workout(ctx context.Context, id string) (*Workout, error) {
	var out Workout
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/workouts/" + url.PathEscape(id),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkout replaces a workout's mutable fields.
func (c *Client) UpdateWorkout(ctx context.Context, id string, draft WorkoutDraft) (*Workout, error) {
	body, contentType, err := jsonBody(draft)
	if err != nil {
		return nil, err
	}

	var out Workout
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/api/workouts/" + url.PathEscape(id),
		body:        body,
		contentType: contentType,
		loadingMsg:  "Saving workout...",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkout removes a workout.
func (c *Client) DeleteWorkout(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/api/workouts/" + url.PathEscape(id),
		loadingMsg: "Deleting workout...",
	}, nil)
}

// TrainerInfo mirrors the trainer sub-record of a profile.
type TrainerInfo struct {
	ExperienceYears int      `json:"experienceYears"`
	HourlyRate      float64  `json:"hourlyRate,omitempty"`
	Location        string   `json:"location,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
}

// Profile mirrors the server's profile resource.
type Profile struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email,omitempty"`
	Role            string       `json:"role,omitempty"`
	Bio             string       `json:"bio,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	ProfilePicture  string       `json:"profilePicture,omitempty"`
	ShowContactInfo bool         `json:"showContactInfo"`
	TrainerInfo     *TrainerInfo `json:"trainerInfo,omitempty"`
}

// ProfileDraft is the payload for updating the caller's own profile.
type ProfileDraft struct {
	Name            string       `json:"name"`
	Bio             string       `json:"bio,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	ShowContactInfo bool         `json:"showContactInfo"`
	TrainerInfo     *TrainerInfo `json:"trainerInfo,omitempty"`
}

// Profile fetches the caller's own profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var out Profile
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/profile/me",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile replaces the caller's mutable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, draft ProfileDraft) (*Profile, error) {
	body, contentType, err := jsonBody(draft)
	if err != nil {
		return nil, err
	}

	var out Profile
	err = c.do(ctx, request{
		method:      http.MethodPut,
		path:        "/api/profile/me",
		body:        body,
		contentType: contentType,
		loadingMsg:  "Saving profile...",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadProfilePicture uploads a new profile picture as a multipart form and
// returns the URL the server will serve it from. The multipart writer's own
// content type (with boundary) is used; no JSON header is set.
func (c *Client) UploadProfilePicture(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := createImagePart(mw, fileName, contentType)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	var out struct {
		ProfilePicture string `json:"profilePicture"`
	}
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/api/profile/me/picture",
		body:        pr,
		contentType: mw.FormDataContentType(),
		loadingMsg:  "Uploading image...",
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ProfilePicture, nil
}

// createImagePart adds the profilePicture file field with an explicit
// per-part content type.
func createImagePart(mw *multipart.Writer, fileName, contentType string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="profilePicture"; filename=%q`, fileName))
	h.Set("Content-Type", contentType)
	return mw.CreatePart(h)
}

// Trainers fetches the public trainer directory.
func (c *Client) Trainers(ctx context.Context) ([]Profile, error) {
	var out []Profile
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/profile/trainers",
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
