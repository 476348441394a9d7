package models

import (
	"time"
)

// User is the account entity posts, comments and follows hang off.
// Credential storage and session issuance live in the external auth
// service; only the identity columns are kept here so foreign keys and
// delete cascades can be enforced at the storage layer.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Username  string    `gorm:"type:varchar(150);not null;uniqueIndex:quill_users_ux1;column:username"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "quill_users"
}
