package controllers

import (
	"net/http"

	dbpkg "tidytask/db"
	"tidytask/models"
	"tidytask/tools"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Two-step reset flow. Proving knowledge of a registered email sets the
// reset_email marker in the session; the marker gates the password change and
// is consumed on the first completion attempt.

// GET /forgot-password
func ShowForgotPassword(c *gin.Context) {
	render(c, http.StatusOK, "forgot_password.html", gin.H{"email": ""})
}

// POST /forgot-password
func ForgotPassword(c *gin.Context) {
	email := tools.NormalizeEmail(c.PostForm("email"))

	db := dbpkg.DBInstance(c)
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		flash(c, "danger", "No account found for that email.")
		render(c, http.StatusOK, "forgot_password.html", gin.H{"email": email})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyResetEmail, user.Email)
	flash(c, "success", "Email verified. Set a new password.")
	c.Redirect(http.StatusFound, "/reset-password")
}

// GET /reset-password
func ShowResetPassword(c *gin.Context) {
	if !hasResetMarker(c) {
		flash(c, "warning", "Please verify your email first.")
		c.Redirect(http.StatusFound, "/forgot-password")
		return
	}
	render(c, http.StatusOK, "reset_password.html", nil)
}

// POST /reset-password
func ResetPassword(c *gin.Context) {
	session := sessions.Default(c)
	resetEmail, ok := session.Get(sessionKeyResetEmail).(string)
	if !ok || resetEmail == "" {
		flash(c, "warning", "Please verify your email first.")
		c.Redirect(http.StatusFound, "/forgot-password")
		return
	}

	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")
	if password == "" || password != confirm {
		flash(c, "danger", "Passwords do not match.")
		render(c, http.StatusOK, "reset_password.html", nil)
		return
	}

	// Consume the marker on every completion attempt, found user or not,
	// so a stale verification cannot be replayed.
	session.Delete(sessionKeyResetEmail)

	db := dbpkg.DBInstance(c)
	var user models.User
	if err := db.Where("email = ?", resetEmail).First(&user).Error; err != nil {
		flash(c, "danger", "Account not found.")
		c.Redirect(http.StatusFound, "/forgot-password")
		return
	}

	hash, err := tools.HashPassword(password)
	if err != nil {
		flash(c, "danger", "Could not reset the password. Try again.")
		c.Redirect(http.StatusFound, "/forgot-password")
		return
	}
	if err := db.Model(&user).Update("password_hash", hash).Error; err != nil {
		flash(c, "danger", "Could not reset the password. Try again.")
		c.Redirect(http.StatusFound, "/forgot-password")
		return
	}

	flash(c, "success", "Password reset successful. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

func hasResetMarker(c *gin.Context) bool {
	email, ok := sessions.Default(c).Get(sessionKeyResetEmail).(string)
	return ok && email != ""
}
