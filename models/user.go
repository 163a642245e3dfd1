package models

import "time"

// User is an account identity. Email is stored normalized (trimmed,
// lower-cased) and is the uniqueness/lookup key. The password only ever
// exists as a salted bcrypt hash; it is never serialized.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Email        string     `gorm:"not null;unique_index" json:"email" form:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    *time.Time `json:"created_at"`

	// Deleting a user must take every owned todo with it; see
	// controllers.DeleteAccount for the explicit cascade.
	Todos []Todo `gorm:"foreignkey:UserID" json:"-"`
}
