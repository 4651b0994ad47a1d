package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cardioguard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("test_session", store))
	return router
}

func testUser() *models.User {
	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Role:     "user",
	}
	user.ID = 9
	return user
}

func TestLoginThenCurrent(t *testing.T) {
	router := newSessionRouter()
	router.POST("/login", func(c *gin.Context) {
		assert.NoError(t, Login(c, testUser()))
		c.Status(http.StatusOK)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, Current(c))
	})

	loginReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	loginRes := httptest.NewRecorder()
	router.ServeHTTP(loginRes, loginReq)
	assert.Equal(t, http.StatusOK, loginRes.Code)

	cookies := loginRes.Result().Cookies()
	assert.NotEmpty(t, cookies)

	whoReq := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		whoReq.AddCookie(c)
	}
	whoRes := httptest.NewRecorder()
	router.ServeHTTP(whoRes, whoReq)

	assert.Equal(t, http.StatusOK, whoRes.Code)
	assert.Contains(t, whoRes.Body.String(), `"username":"testuser"`)
	assert.Contains(t, whoRes.Body.String(), `"logged_in":true`)
}

func TestCurrentWithoutLoginReturnsGuest(t *testing.T) {
	router := newSessionRouter()
	router.GET("/whoami", func(c *gin.Context) {
		identity := Current(c)
		assert.False(t, identity.LoggedIn)
		assert.Equal(t, "Guest User", identity.Username)
		assert.Equal(t, "Guest Mode", identity.FullName)
		assert.Equal(t, "Guest", identity.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	router := newSessionRouter()
	router.POST("/login", func(c *gin.Context) {
		assert.NoError(t, Login(c, testUser()))
		c.Status(http.StatusOK)
	})
	router.POST("/logout", func(c *gin.Context) {
		assert.NoError(t, Logout(c))
		c.Status(http.StatusOK)
	})
	router.GET("/check", func(c *gin.Context) {
		if IsLoggedIn(c) {
			c.Status(http.StatusOK)
			return
		}
		c.Status(http.StatusUnauthorized)
	})

	loginReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	loginRes := httptest.NewRecorder()
	router.ServeHTTP(loginRes, loginReq)

	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	for _, c := range loginRes.Result().Cookies() {
		logoutReq.AddCookie(c)
	}
	logoutRes := httptest.NewRecorder()
	router.ServeHTTP(logoutRes, logoutReq)
	assert.Equal(t, http.StatusOK, logoutRes.Code)

	checkReq := httptest.NewRequest(http.MethodGet, "/check", nil)
	for _, c := range logoutRes.Result().Cookies() {
		checkReq.AddCookie(c)
	}
	checkRes := httptest.NewRecorder()
	router.ServeHTTP(checkRes, checkReq)
	assert.Equal(t, http.StatusUnauthorized, checkRes.Code)
}
