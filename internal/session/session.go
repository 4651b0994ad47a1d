// Package session wraps the cookie session layer so controllers work with a
// typed identity instead of raw session keys.
package session

import (
	"time"

	"cardioguard/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyUserID    = "user_id"
	keyUsername  = "username"
	keyEmail     = "email"
	keyUserRole  = "user_role"
	keyLoginTime = "login_time"
)

// MaxAge bounds how long a login cookie stays valid, in seconds.
const MaxAge = 3600

// Identity describes who is making the request. Anonymous visitors get the
// guest identity rather than an error.
type Identity struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LoggedIn  bool   `json:"logged_in"`
	LoginTime string `json:"login_time,omitempty"`
}

func guestIdentity() Identity {
	return Identity{
		Username: "Guest User",
		FullName: "Guest Mode",
		Role:     "Guest",
		LoggedIn: false,
	}
}

// Login records the user in the session cookie.
func Login(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(keyUserID, user.ID)
	session.Set(keyUsername, user.Username)
	session.Set(keyEmail, user.Email)
	session.Set(keyUserRole, user.Role)
	session.Set(keyLoginTime, time.Now().Format(time.RFC3339))
	return session.Save()
}

// Logout clears the session and expires the cookie.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	return session.Save()
}

// IsLoggedIn reports whether the session carries a user id.
func IsLoggedIn(c *gin.Context) bool {
	session := sessions.Default(c)
	return session.Get(keyUserID) != nil
}

// Current resolves the request identity from the session, falling back to
// the guest identity when nobody is logged in.
func Current(c *gin.Context) Identity {
	session := sessions.Default(c)

	rawID := session.Get(keyUserID)
	if rawID == nil {
		return guestIdentity()
	}

	userID, ok := rawID.(uint)
	if !ok {
		return guestIdentity()
	}

	identity := Identity{
		UserID:   userID,
		LoggedIn: true,
		Role:     "user",
	}
	if username, ok := session.Get(keyUsername).(string); ok {
		identity.Username = username
		identity.FullName = username
	}
	if email, ok := session.Get(keyEmail).(string); ok {
		identity.Email = email
	}
	if role, ok := session.Get(keyUserRole).(string); ok && role != "" {
		identity.Role = role
	}
	if loginTime, ok := session.Get(keyLoginTime).(string); ok {
		identity.LoginTime = loginTime
	}
	return identity
}

// UserID returns the session's user id, with ok false for guests.
func UserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get(keyUserID).(uint)
	return userID, ok
}
