package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipehub/internal/models"
	"recipehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuthService accepts exactly one token.
type stubAuthService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubAuthService) Login(ctx context.Context, name, password string) (string, *models.User, error) {
	panic("not used")
}

func (s *stubAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString == s.validToken {
		return s.claims, nil
	}
	return nil, service.ErrInvalidToken
}

func setupProtectedRoute(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(authService))
	router.GET("/me", func(c *gin.Context) {
		name, ok := UserName(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": name})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	auth := &stubAuthService{
		validToken: "good-token",
		claims:     &service.Claims{UserID: "u-1", Name: "alice"},
	}
	router := setupProtectedRoute(auth)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"ValidToken", "Bearer good-token", http.StatusOK},
		{"MissingHeader", "", http.StatusUnauthorized},
		{"MalformedHeader", "good-token", http.StatusUnauthorized},
		{"WrongScheme", "Basic good-token", http.StatusUnauthorized},
		{"InvalidToken", "Bearer bad-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestUserNameMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserName(c)
	assert.False(t, ok)
}
