package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render draws a template with the pending flashes and, when available, the
// logged user's display name.
func render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["flashes"] = consumeFlashes(c)
	if userName, ok := c.Get(ctxUserNameKey); ok {
		data["user_name"] = userName
	}
	c.HTML(code, name, data)
}

// Index sends logged-in clients to the dashboard, everyone else to login.
func Index(c *gin.Context) {
	if _, ok := sessionUserID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
