package models

import "time"

// Comment is a reply attached to a post. Both references must resolve to
// existing rows at creation time.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	PostID    uint      `gorm:"not null;index" json:"post"`
	CreatedAt time.Time `json:"created_at"`
}
