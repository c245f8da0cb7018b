package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	jwtsvc "zenchair/internal/pkg/jwt"
)

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken("user_42", "customer")

	router := gin.New()
	router.Use(RequireAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": UserID(c),
			"role":    c.GetString(CtxRole),
		})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_42")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)

	router := gin.New()
	router.Use(RequireAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	signer := jwtsvc.New("signing-secret", time.Hour)
	verifier := jwtsvc.New("other-secret", time.Hour)
	token, _ := signer.GenerateToken("user_42", "customer")

	router := gin.New()
	router.Use(RequireAuth(verifier))
	router.GET("/protected", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPassesThrough(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)

	router := gin.New()
	router.Use(OptionalAuth(jwtService))
	router.POST("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuth_TokenAttachesIdentity(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken("user_42", "customer")

	router := gin.New()
	router.Use(OptionalAuth(jwtService))
	router.POST("/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_42")
}

func TestRequireRole_Mismatch(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwtService.GenerateToken("user_42", "customer")

	router := gin.New()
	router.Use(RequireAuth(jwtService), RequireRole("barber"))
	router.POST("/shops", func(c *gin.Context) {
		t.Fatal("handler should not be reached")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/shops", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
