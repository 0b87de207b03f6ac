package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "creatortrust/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(j *jwtsvc.Service) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestRequireAuth_ValidToken(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateToken(42, "brand")
	require.NoError(t, err)

	r := newAuthRouter(j)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"brand"`)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := newAuthRouter(jwtsvc.New("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r := newAuthRouter(jwtsvc.New("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	other := jwtsvc.New("other-secret", time.Hour)
	token, err := other.GenerateToken(42, "creator")
	require.NoError(t, err)

	r := newAuthRouter(jwtsvc.New("test-secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	j := jwtsvc.New("test-secret", -time.Minute)
	token, err := j.GenerateToken(42, "creator")
	require.NoError(t, err)

	r := newAuthRouter(j)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
