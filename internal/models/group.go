package models

// Group is a named category posts can optionally belong to.
// Groups are referenced, never owned, by posts; deleting a group nulls
// the reference on its posts instead of deleting them.
type Group struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id"`
	Title       string `gorm:"type:varchar(200);not null;column:title"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex:quill_groups_ux1;column:slug"`
	Description string `gorm:"type:text;not null;default:'';column:description"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "quill_groups"
}
