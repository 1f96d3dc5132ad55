package api

import (
	"net/http"
	"time"

	"fitfusion/backend/internal/domain"
	"fitfusion/backend/internal/service"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// route is one row of the static registration table: method, path, handler,
// and the roles allowed to call it. An empty role list means any
// authenticated user; Public routes skip authentication entirely.
type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Roles   []domain.Role
	Public  bool
}

// SetupRoutes mounts the full API route table onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
	templateService service.TemplateService,
	dietService service.DietService,
	adminService service.AdminService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	templateHandler := NewTemplateHandler(templateService)
	dietHandler := NewDietHandler(dietService)
	adminHandler := NewAdminHandler(adminService)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "FitFusion API Running")
	})

	// Brute-force protection on the credential endpoints: 10 requests burst,
	// one token refilled per second, per client IP.
	authLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 10), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatus(http.StatusTooManyRequests)
	})

	routes := []route{
		{Method: http.MethodPost, Path: "/auth/register", Handler: authHandler.Register, Public: true},
		{Method: http.MethodPost, Path: "/auth/login", Handler: authHandler.Login, Public: true},

		{Method: http.MethodGet, Path: "/profile/me", Handler: profileHandler.GetMe},
		{Method: http.MethodPut, Path: "/profile/me", Handler: profileHandler.UpdateMe},
		{Method: http.MethodPost, Path: "/profile/me/picture", Handler: profileHandler.UploadPicture},
		{Method: http.MethodGet, Path: "/profile/trainers", Handler: profileHandler.ListTrainers},

		{Method: http.MethodGet, Path: "/workouts", Handler: workoutHandler.List},
		{Method: http.MethodPost, Path: "/workouts", Handler: workoutHandler.Create},
		{Method: http.MethodGet, Path: "/workouts/:id", Handler: workoutHandler.Get},
		{Method: http.MethodPut, Path: "/workouts/:id", Handler: workoutHandler.Update},
		{Method: http.MethodDelete, Path: "/workouts/:id", Handler: workoutHandler.Delete},

		{Method: http.MethodGet, Path: "/exercises", Handler: exerciseHandler.List},
		{Method: http.MethodPost, Path: "/exercises", Handler: exerciseHandler.Create},
		{Method: http.MethodPut, Path: "/exercises/:id", Handler: exerciseHandler.Update},
		{Method: http.MethodDelete, Path: "/exercises/:id", Handler: exerciseHandler.Delete},

		{Method: http.MethodGet, Path: "/templates", Handler: templateHandler.List},
		{Method: http.MethodPost, Path: "/templates", Handler: templateHandler.Create},
		{Method: http.MethodPut, Path: "/templates/:id", Handler: templateHandler.Update},
		{Method: http.MethodDelete, Path: "/templates/:id", Handler: templateHandler.Delete},
		{Method: http.MethodPost, Path: "/templates/:id/instantiate", Handler: templateHandler.Instantiate},

		{Method: http.MethodGet, Path: "/diet", Handler: dietHandler.List},
		{Method: http.MethodPost, Path: "/diet", Handler: dietHandler.Create},
		{Method: http.MethodPut, Path: "/diet/:id", Handler: dietHandler.Update},
		{Method: http.MethodDelete, Path: "/diet/:id", Handler: dietHandler.Delete},

		{Method: http.MethodGet, Path: "/admin/users", Handler: adminHandler.ListUsers, Roles: []domain.Role{domain.RoleAdmin}},
		{Method: http.MethodDelete, Path: "/admin/users/:id", Handler: adminHandler.DeleteUser, Roles: []domain.Role{domain.RoleAdmin}},
		{Method: http.MethodPut, Path: "/admin/users/:id/role", Handler: adminHandler.UpdateUserRole, Roles: []domain.Role{domain.RoleAdmin}},
		{Method: http.MethodGet, Path: "/admin/stats", Handler: adminHandler.GetStats, Roles: []domain.Role{domain.RoleAdmin}},
	}

	authMiddleware := AuthMiddleware(jwtSecret)

	apiGroup := router.Group("/api")
	for _, r := range routes {
		handlers := []gin.HandlerFunc{}
		if r.Public {
			handlers = append(handlers, authLimiter)
		} else {
			handlers = append(handlers, authMiddleware)
			if len(r.Roles) > 0 {
				handlers = append(handlers, RoleMiddleware(r.Roles...))
			}
		}
		handlers = append(handlers, r.Handler)
		apiGroup.Handle(r.Method, r.Path, handlers...)
	}
}
