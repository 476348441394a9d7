package web

import (
	"context"

	"github.com/quillworks/quill/internal/models"
)

// The store interfaces below are the slices of internal/db the
// handlers consume. The repositories satisfy them directly; tests
// substitute in-memory fakes.

// UserStore looks up accounts
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// GroupStore looks up groups
type GroupStore interface {
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
}

// PostStore reads and mutates posts
type PostStore interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	ListRecent(ctx context.Context, limit, offset int) ([]models.Post, error)
	ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]models.Post, error)
	ListFollowed(ctx context.Context, userID int64, limit, offset int) ([]models.Post, error)
	CountAll(ctx context.Context) (int64, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	CountFollowed(ctx context.Context, userID int64) (int64, error)
}

// CommentStore creates and lists comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

// FollowStore maintains follow edges
type FollowStore interface {
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, userID, authorID int64) error
	Exists(ctx context.Context, userID, authorID int64) (bool, error)
}
