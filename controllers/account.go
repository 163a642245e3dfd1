package controllers

import (
	"net/http"

	dbpkg "tidytask/db"
	"tidytask/models"

	"github.com/gin-gonic/gin"
)

// POST /account/delete
// Removes the logged user and every owned todo in one transaction, so no
// orphan todos can survive the account.
func DeleteAccount(c *gin.Context) {
	userID, ok := LoggedUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	db := dbpkg.DBInstance(c)
	tx := db.Begin()
	if err := tx.Where("user_id = ?", userID).Delete(&models.Todo{}).Error; err != nil {
		tx.Rollback()
		flash(c, "danger", "Could not delete the account.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if err := tx.Delete(&models.User{}, "id = ?", userID).Error; err != nil {
		tx.Rollback()
		flash(c, "danger", "Could not delete the account.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		flash(c, "danger", "Could not delete the account.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	clearSession(c)
	flash(c, "info", "Your account has been deleted.")
	c.Redirect(http.StatusFound, "/register")
}
