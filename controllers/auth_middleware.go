package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey   = "auth_user_id"
	ctxUserNameKey = "auth_user_name"
)

// LoginRequired gates every protected route. Handlers behind it never
// re-implement the check; they read the identity via LoggedUserID.
// The redirect message deliberately says nothing beyond "please log in".
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := sessionUserID(c)
		if !ok {
			flash(c, "warning", "Please log in to continue.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		name, _ := sessions.Default(c).Get(sessionKeyUserName).(string)
		c.Set(ctxUserIDKey, id)
		c.Set(ctxUserNameKey, name)
		c.Next()
	}
}

// LoggedUserID returns the identity loaded by LoginRequired.
func LoggedUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
