// Package auth provides the session-backed access control middleware.
// Sessions carry only the user id and admin flag; everything else is looked
// up per request.
package auth

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/jorren/quotespark/internal/api/models"
)

const (
	sessionKeyUserID  = "user_id"
	sessionKeyIsAdmin = "is_admin"
)

// Login stores the authenticated user in the session.
func Login(c *gin.Context, userID int, isAdmin bool) error {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, userID)
	session.Set(sessionKeyIsAdmin, isAdmin)
	return session.Save()
}

// Logout clears the session, including any anonymous settings draft.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// UserID returns the logged-in user's id, if any.
func UserID(c *gin.Context) (int, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionKeyUserID).(int)
	return id, ok
}

// IsAdmin reports whether the session belongs to an admin.
func IsAdmin(c *gin.Context) bool {
	session := sessions.Default(c)
	isAdmin, ok := session.Get(sessionKeyIsAdmin).(bool)
	return ok && isAdmin
}

// RequireAuth rejects requests without a logged-in session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Login required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests without an admin session. Anonymous callers
// get the same 403 as logged-in non-admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}
