package models

import (
	"database/sql"
	"time"
)

// postExcerptLen bounds the short form used in logs and admin listings.
const postExcerptLen = 15

// Post is the primary content unit: authored text, optionally grouped,
// optionally illustrated. CreatedAt is set once on insert and never
// updated. Deleting the author cascades to the post; deleting the
// group only clears the reference.
type Post struct {
	ID        int64         `gorm:"primaryKey;autoIncrement;column:id"`
	Text      string        `gorm:"type:text;not null;column:text"`
	CreatedAt time.Time     `gorm:"not null;column:created_at"`
	AuthorID  int64         `gorm:"not null;index:quill_posts_ix1;column:author_id"`
	GroupID   sql.NullInt64 `gorm:"index:quill_posts_ix2;column:group_id"`
	Image     string        `gorm:"type:varchar(1024);not null;default:'';column:image"`

	// Relationships
	Author *User  `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Group  *Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "quill_posts"
}

// Excerpt returns the leading runes of the post text for display in
// logs and listings.
func (p *Post) Excerpt() string {
	return truncateRunes(p.Text, postExcerptLen)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
