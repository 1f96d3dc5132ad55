package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/repository/memory"
	"fitfusion/backend/internal/service"
	"fitfusion/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// newTestServer wires the full route table against in-memory repositories.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	workouts := memory.NewWorkoutRepository()
	exercises := memory.NewExerciseRepository()
	templates := memory.NewTemplateRepository()
	diet := memory.NewDietRepository()

	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("creating local storage: %v", err)
	}

	router := gin.New()
	SetupRoutes(
		router,
		testSecret,
		service.NewAuthService(users, testSecret, 0),
		service.NewProfileService(users, fileStorage),
		service.NewWorkoutService(workouts),
		service.NewExerciseService(exercises),
		service.NewTemplateService(templates, workouts),
		service.NewDietService(diet),
		service.NewAdminService(users, workouts, exercises, templates, diet),
	)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, router *gin.Engine, email string, role domain.Role) (token string, userID string) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d, body %s", email, w.Code, w.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding register response: %v", err)
	}
	return resp.Token, resp.User.ID.Hex()
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestServer(t)

	token, _ := register(t, router, "jane@example.com", domain.RoleClient)
	if token == "" {
		t.Fatal("register returned no token")
	}

	// Registering the same email again conflicts.
	w := doJSON(router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Jane Again", "email": "jane@example.com", "password": "password123", "role": "client",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate register: got %d want 409, body %s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login: got %d want 200, body %s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jane@example.com", "password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login: got %d want 401, body %s", w.Code, w.Body.String())
	}
}

func TestRegisterValidation(t *testing.T) {
	router := newTestServer(t)

	cases := []gin.H{
		{"name": "X", "email": "not-an-email", "password": "password123", "role": "client"},
		{"name": "X", "email": "x@example.com", "password": "short", "role": "client"},
		{"name": "X", "email": "x@example.com", "password": "password123", "role": "admin"},
	}
	for _, body := range cases {
		w := doJSON(router, http.MethodPost, "/api/auth/register", "", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("register %v: got %d want 400", body, w.Code)
		}
	}
}

func TestWorkoutEndpoints(t *testing.T) {
	router := newTestServer(t)
	owner, _ := register(t, router, "owner@example.com", domain.RoleClient)
	stranger, _ := register(t, router, "stranger@example.com", domain.RoleClient)

	// Unauthenticated access is rejected.
	if w := doJSON(router, http.MethodGet, "/api/workouts", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous list: got %d want 401", w.Code)
	}

	w := doJSON(router, http.MethodPost, "/api/workouts", owner, gin.H{
		"title": "Push day", "durationMinutes": 60,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create workout: got %d, body %s", w.Code, w.Body.String())
	}
	var created domain.Workout
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding workout: %v", err)
	}

	// A different user cannot read or delete it.
	path := "/api/workouts/" + created.ID.Hex()
	if w := doJSON(router, http.MethodGet, path, stranger, nil); w.Code != http.StatusForbidden {
		t.Errorf("foreign get: got %d want 403", w.Code)
	}
	if w := doJSON(router, http.MethodDelete, path, stranger, nil); w.Code != http.StatusForbidden {
		t.Errorf("foreign delete: got %d want 403", w.Code)
	}

	// The owner still sees it, then deletes it.
	if w := doJSON(router, http.MethodGet, path, owner, nil); w.Code != http.StatusOK {
		t.Errorf("owner get after foreign delete: got %d", w.Code)
	}
	if w := doJSON(router, http.MethodDelete, path, owner, nil); w.Code != http.StatusNoContent {
		t.Errorf("owner delete: got %d want 204", w.Code)
	}
	if w := doJSON(router, http.MethodGet, path, owner, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: got %d want 404", w.Code)
	}
}

func TestWorkoutListResponseShape(t *testing.T) {
	router := newTestServer(t)
	token, _ := register(t, router, "lifter@example.com", domain.RoleClient)

	for i := 0; i < 12; i++ {
		w := doJSON(router, http.MethodPost, "/api/workouts", token, gin.H{
			"title": fmt.Sprintf("Session %d", i), "durationMinutes": 30,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d: got %d", i, w.Code)
		}
	}

	w := doJSON(router, http.MethodGet, "/api/workouts?page=2&limit=5", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d, body %s", w.Code, w.Body.String())
	}
	var page struct {
		Workouts   []domain.Workout `json:"workouts"`
		TotalPages int              `json:"totalPages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decoding page: %v", err)
	}
	if len(page.Workouts) != 5 {
		t.Errorf("page size: got %d want 5", len(page.Workouts))
	}
	if page.TotalPages != 3 {
		t.Errorf("totalPages: got %d want 3", page.TotalPages)
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestServer(t)
	clientToken, _ := register(t, router, "client@example.com", domain.RoleClient)

	w := doJSON(router, http.MethodGet, "/api/admin/users", clientToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("client on admin route: got %d want 403, body %s", w.Code, w.Body.String())
	}
}

func TestTrainerDirectoryEndpoint(t *testing.T) {
	router := newTestServer(t)
	clientToken, _ := register(t, router, "client@example.com", domain.RoleClient)
	register(t, router, "coach@example.com", domain.RoleTrainer)

	w := doJSON(router, http.MethodGet, "/api/profile/trainers", clientToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("trainers: got %d, body %s", w.Code, w.Body.String())
	}
	var trainers []domain.User
	if err := json.Unmarshal(w.Body.Bytes(), &trainers); err != nil {
		t.Fatalf("decoding trainers: %v", err)
	}
	if len(trainers) != 1 {
		t.Fatalf("trainer count: got %d want 1", len(trainers))
	}
	// Contact info defaults to hidden.
	if trainers[0].Email != "" {
		t.Errorf("trainer email leaked: %q", trainers[0].Email)
	}
}
