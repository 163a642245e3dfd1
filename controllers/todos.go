package controllers

import (
	"net/http"
	"strconv"
	"strings"

	dbpkg "tidytask/db"
	"tidytask/models"

	"github.com/gin-gonic/gin"
)

// Every handler here scopes its query by (id, user_id). A todo owned by
// someone else is indistinguishable from a missing one: same message, same
// redirect, no hint that the id exists.

// GET /dashboard
func Dashboard(c *gin.Context) {
	userID, ok := LoggedUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	db := dbpkg.DBInstance(c)
	var todos []models.Todo
	if err := db.Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&todos).Error; err != nil {
		flash(c, "danger", "Could not load your todos.")
	}
	render(c, http.StatusOK, "dashboard.html", gin.H{"todos": todos})
}

// POST /dashboard
func CreateTodo(c *gin.Context) {
	userID, ok := LoggedUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		flash(c, "danger", "Todo title cannot be empty.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	db := dbpkg.DBInstance(c)
	todo := models.Todo{Title: title, UserID: userID}
	if err := db.Create(&todo).Error; err != nil {
		flash(c, "danger", "Could not add the todo.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "success", "Todo added.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /todos/:id/edit
func ShowEditTodo(c *gin.Context) {
	todo, ok := findOwnedTodo(c)
	if !ok {
		return
	}
	render(c, http.StatusOK, "edit_todo.html", gin.H{"todo": todo})
}

// POST /todos/:id/edit
func UpdateTodo(c *gin.Context) {
	todo, ok := findOwnedTodo(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		flash(c, "danger", "Todo title cannot be empty.")
		render(c, http.StatusOK, "edit_todo.html", gin.H{"todo": todo})
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Model(&todo).Update("title", title).Error; err != nil {
		flash(c, "danger", "Could not update the todo.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "success", "Todo updated.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// POST /todos/:id/toggle
func ToggleTodo(c *gin.Context) {
	todo, ok := findOwnedTodo(c)
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Model(&todo).Update("is_complete", !todo.IsComplete).Error; err != nil {
		flash(c, "danger", "Could not update the todo.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "success", "Todo updated.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// POST /todos/:id/delete
func DeleteTodo(c *gin.Context) {
	todo, ok := findOwnedTodo(c)
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Delete(&models.Todo{}, "id = ? AND user_id = ?", todo.ID, todo.UserID).Error; err != nil {
		flash(c, "danger", "Could not delete the todo.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "info", "Todo deleted.")
	c.Redirect(http.StatusFound, "/dashboard")
}

// findOwnedTodo resolves :id against the logged user. On any miss (bad id,
// unknown id, someone else's todo) it flashes "Todo not found." and redirects
// to the dashboard, having already answered the request.
func findOwnedTodo(c *gin.Context) (models.Todo, bool) {
	userID, ok := LoggedUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return models.Todo{}, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		flash(c, "danger", "Todo not found.")
		c.Redirect(http.StatusFound, "/dashboard")
		return models.Todo{}, false
	}

	db := dbpkg.DBInstance(c)
	var todo models.Todo
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error; err != nil {
		flash(c, "danger", "Todo not found.")
		c.Redirect(http.StatusFound, "/dashboard")
		return models.Todo{}, false
	}
	return todo, true
}
