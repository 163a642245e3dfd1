package router

import (
	"log"

	"tidytask/config"
	"tidytask/controllers"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes, the password
// reset pair, and the authenticated group behind LoginRequired.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Security.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0, // session cookie; cleared when the browser closes
	})
	r.Use(sessions.Sessions("tidytask_session", store))

	r.GET("/", Logger(), controllers.Index)

	// Public (no auth)
	r.GET("/register", Logger(), controllers.ShowRegister)
	r.POST("/register", Logger(), controllers.Register)
	r.GET("/login", Logger(), controllers.ShowLogin)
	r.POST("/login", Logger(), controllers.Login)
	r.GET("/logout", Logger(), controllers.Logout)

	// Password reset flow (gated by the reset_email marker, not by login)
	r.GET("/forgot-password", Logger(), controllers.ShowForgotPassword)
	r.POST("/forgot-password", Logger(), controllers.ForgotPassword)
	r.GET("/reset-password", Logger(), controllers.ShowResetPassword)
	r.POST("/reset-password", Logger(), controllers.ResetPassword)

	// Authenticated routes
	auth := r.Group("")
	auth.Use(controllers.LoginRequired())
	auth.GET("/dashboard", Logger(), controllers.Dashboard)
	auth.POST("/dashboard", Logger(), controllers.CreateTodo)
	auth.GET("/todos/:id/edit", Logger(), controllers.ShowEditTodo)
	auth.POST("/todos/:id/edit", Logger(), controllers.UpdateTodo)
	auth.POST("/todos/:id/toggle", Logger(), controllers.ToggleTodo)
	auth.POST("/todos/:id/delete", Logger(), controllers.DeleteTodo)
	auth.POST("/account/delete", Logger(), controllers.DeleteAccount)

	log.Printf("Routes initialized")
}
