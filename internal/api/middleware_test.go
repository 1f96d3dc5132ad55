package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitfusion/backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, claims *jwtClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func validClaims(expiresIn time.Duration) *jwtClaims {
	return &jwtClaims{
		UserID: primitive.NewObjectID().Hex(),
		Role:   domain.RoleClient,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "fitfusion",
		},
	}
}

func newAuthTestRouter(roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/protected", handlers...)
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body %q: %v", w.Body.String(), err)
	}
	return body["error"]
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := newAuthTestRouter()
	token := signToken(t, testSecret, validClaims(time.Hour))

	w := doProtected(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status: got %d want 200, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := doProtected(newAuthTestRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d want 401", w.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := newAuthTestRouter()
	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		w := doProtected(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got %d want 401", header, w.Code)
		}
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := newAuthTestRouter()
	token := signToken(t, testSecret, validClaims(-time.Hour))

	w := doProtected(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want 401", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Token has expired" {
		t.Errorf("error message: got %q", msg)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	router := newAuthTestRouter()
	token := signToken(t, "some-other-secret", validClaims(time.Hour))

	w := doProtected(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d want 401", w.Code)
	}
}

func TestAuthMiddlewareUnknownRole(t *testing.T) {
	router := newAuthTestRouter()
	claims := validClaims(time.Hour)
	claims.Role = domain.Role("superuser")
	token := signToken(t, testSecret, claims)

	w := doProtected(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d want 401", w.Code)
	}
}

func TestRoleMiddleware(t *testing.T) {
	router := newAuthTestRouter(domain.RoleAdmin)

	clientToken := signToken(t, testSecret, validClaims(time.Hour))
	w := doProtected(router, "Bearer "+clientToken)
	if w.Code != http.StatusForbidden {
		t.Errorf("client against admin route: got %d want 403", w.Code)
	}

	adminClaims := validClaims(time.Hour)
	adminClaims.Role = domain.RoleAdmin
	adminToken := signToken(t, testSecret, adminClaims)
	w = doProtected(router, "Bearer "+adminToken)
	if w.Code != http.StatusOK {
		t.Errorf("admin against admin route: got %d want 200, body %s", w.Code, w.Body.String())
	}
}
