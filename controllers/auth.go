package controllers

import (
	"fmt"
	"net/http"
	"strings"

	dbpkg "tidytask/db"
	"tidytask/models"
	"tidytask/tools"

	"github.com/gin-gonic/gin"
)

// GET /register
func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"name": "", "email": ""})
}

// POST /register
func Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := tools.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	if name == "" || email == "" || password == "" {
		flash(c, "danger", "All fields are required.")
		render(c, http.StatusOK, "register.html", gin.H{"name": name, "email": email})
		return
	}
	if !tools.ValidateEmail(email) {
		flash(c, "danger", "That email address is not valid.")
		render(c, http.StatusOK, "register.html", gin.H{"name": name, "email": email})
		return
	}

	db := dbpkg.DBInstance(c)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		flash(c, "danger", "Email is already registered.")
		render(c, http.StatusOK, "register.html", gin.H{"name": name, "email": email})
		return
	}

	hash, err := tools.HashPassword(password)
	if err != nil {
		flash(c, "danger", "Could not create the account. Try again.")
		render(c, http.StatusOK, "register.html", gin.H{"name": name, "email": email})
		return
	}

	user := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		// The unique index on email closes the lookup/insert race.
		flash(c, "danger", "Email is already registered.")
		render(c, http.StatusOK, "register.html", gin.H{"name": name, "email": email})
		return
	}

	flash(c, "success", "Registration successful. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// GET /login
func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"email": ""})
}

// POST /login
// Unknown email and wrong password answer with the same message so that the
// form never confirms which half was wrong.
func Login(c *gin.Context) {
	email := tools.NormalizeEmail(c.PostForm("email"))
	password := c.PostForm("password")

	db := dbpkg.DBInstance(c)
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		flash(c, "danger", "Invalid email or password.")
		render(c, http.StatusOK, "login.html", gin.H{"email": email})
		return
	}
	if !tools.CheckPasswordHash(user.PasswordHash, password) {
		flash(c, "danger", "Invalid email or password.")
		render(c, http.StatusOK, "login.html", gin.H{"email": email})
		return
	}

	establishSession(c, user)
	flash(c, "success", fmt.Sprintf("Welcome back, %s.", user.Name))
	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /logout
func Logout(c *gin.Context) {
	clearSession(c)
	flash(c, "info", "You have been logged out.")
	c.Redirect(http.StatusFound, "/login")
}
