package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/middleware"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("local-test-secret"))
	require.NoError(t, err)
	return signed
}

func viewerRouter() (*gin.Engine, *domain.Viewer, *string) {
	gin.SetMode(gin.TestMode)
	var captured domain.Viewer
	var capturedToken string

	r := gin.New()
	r.Use(middleware.Viewer())
	r.GET("/probe", func(c *gin.Context) {
		v, _ := middleware.GetViewer(c)
		tok, _ := middleware.GetToken(c)
		captured = v
		capturedToken = tok
		c.Status(http.StatusOK)
	})
	return r, &captured, &capturedToken
}

func TestViewer_ValidToken(t *testing.T) {
	r, captured, capturedToken := viewerRouter()

	userID := uuid.New()
	token := signedToken(t, jwt.MapClaims{
		"sub":      userID.String(),
		"name":     "Asha",
		"role":     "architect",
		"is_owner": false,
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, "Asha", captured.Name)
	assert.Equal(t, "architect", captured.Role)
	assert.False(t, captured.IsOwner)
	assert.Equal(t, token, *capturedToken)
}

func TestViewer_OwnerClaim(t *testing.T) {
	r, captured, _ := viewerRouter()

	token := signedToken(t, jwt.MapClaims{
		"sub":      uuid.New().String(),
		"name":     "Deepak",
		"role":     "principal",
		"is_owner": true,
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, captured.IsOwner)
}

func TestViewer_MissingHeader(t *testing.T) {
	r, _, _ := viewerRouter()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestViewer_MalformedToken(t *testing.T) {
	r, _, _ := viewerRouter()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewer_MissingSubject(t *testing.T) {
	r, _, _ := viewerRouter()

	token := signedToken(t, jwt.MapClaims{"name": "NoSub", "role": "client"})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
