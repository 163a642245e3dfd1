package models

import "time"

// Todo belongs to exactly one user for its entire lifetime.
// Every query against this table filters by (id, user_id).
type Todo struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Title      string     `gorm:"not null" json:"title" form:"title"`
	IsComplete bool       `gorm:"not null;default:false" json:"is_complete"`
	UserID     int64      `gorm:"not null;index" json:"user_id"`
	CreatedAt  *time.Time `json:"created_at"`
}
