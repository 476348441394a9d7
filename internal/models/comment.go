package models

import (
	"time"
)

const commentExcerptLen = 50

// Comment is a reply to a post. Both the post and the author are
// required; deleting either cascades to the comment, so a comment
// never outlives its post or its author. Comments are immutable after
// creation.
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id"`
	Text      string    `gorm:"type:text;not null;column:text"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	PostID    int64     `gorm:"not null;index:quill_comments_ix1;column:post_id"`
	AuthorID  int64     `gorm:"not null;index:quill_comments_ix2;column:author_id"`

	// Relationships
	Post   *Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Author *User `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "quill_comments"
}

// Excerpt returns the leading runes of the comment text.
func (c *Comment) Excerpt() string {
	return truncateRunes(c.Text, commentExcerptLen)
}
