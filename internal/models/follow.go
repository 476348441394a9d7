package models

import (
	"time"
)

// Follow is a directed subscription edge from a user to an author.
// The composite primary key makes the pair unique; self-follows are
// rejected at the service layer. Deleting either side cascades to the
// edge.
type Follow struct {
	UserID    int64     `gorm:"primaryKey;column:user_id"`
	AuthorID  int64     `gorm:"primaryKey;column:author_id"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`

	// Relationships
	User   *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "quill_follows"
}
