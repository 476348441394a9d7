// Package auth carries the authenticated identity through a request
// and holds the authorization predicates consulted before any
// mutating action. Credential checks and session issuance belong to
// the external auth service.
package auth

import (
	"github.com/quillworks/quill/internal/models"
)

// Identity is the authenticated user attached to a request. The zero
// value means anonymous.
type Identity struct {
	UserID   int64
	Username string
}

// IsAuthenticated reports whether the identity belongs to a logged-in
// user.
func (id Identity) IsAuthenticated() bool {
	return id.UserID != 0
}

// CanEditPost reports whether the actor may mutate the post. Only the
// post's author may; everyone else gets a read-only view.
func CanEditPost(id Identity, post *models.Post) bool {
	return id.IsAuthenticated() && post != nil && post.AuthorID == id.UserID
}

// CanComment reports whether the actor may comment on posts.
func CanComment(id Identity) bool {
	return id.IsAuthenticated()
}

// CanFollow reports whether the actor may follow or unfollow authors.
func CanFollow(id Identity) bool {
	return id.IsAuthenticated()
}
