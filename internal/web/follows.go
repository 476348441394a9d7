package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillworks/quill/internal/auth"
	"github.com/quillworks/quill/internal/feed"
	"github.com/quillworks/quill/internal/models"
)

// FollowIndex renders the personalized feed: posts by every author
// the viewer follows
func (r *Router) FollowIndex(c *gin.Context) {
	ctx := c.Request.Context()
	identity := auth.FromContext(c)

	number := feed.ParseNumber(c.Query("page"))
	offset, limit := feed.Window(number, r.cfg.Feed.PostsPerPage)

	posts, err := r.posts.ListFollowed(ctx, identity.UserID, limit, offset)
	if err != nil {
		r.serverError(c, err)
		return
	}
	total, err := r.posts.CountFollowed(ctx, identity.UserID)
	if err != nil {
		r.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "follow.html", gin.H{
		"page_obj": posts,
		"page":     feed.Page{Number: number, Size: r.cfg.Feed.PostsPerPage, Total: total},
		"user":     identity,
	})
}

// ProfileFollow creates the follow edge from the viewer to the
// author. Following yourself or someone you already follow is a
// no-op, not an error.
func (r *Router) ProfileFollow(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := r.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		r.serverError(c, err)
		return
	}
	if author == nil {
		r.NotFound(c)
		return
	}

	identity := auth.FromContext(c)
	profileURL := "/profile/" + author.Username + "/"

	if identity.UserID == author.ID {
		c.Redirect(http.StatusFound, profileURL)
		return
	}

	exists, err := r.follows.Exists(ctx, identity.UserID, author.ID)
	if err != nil {
		r.serverError(c, err)
		return
	}
	if !exists {
		follow := &models.Follow{UserID: identity.UserID, AuthorID: author.ID}
		if err := r.follows.Create(ctx, follow); err != nil {
			r.serverError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, profileURL)
}

// ProfileUnfollow hard-deletes the follow edge. Unfollowing someone
// you never followed is a no-op redirect.
func (r *Router) ProfileUnfollow(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := r.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		r.serverError(c, err)
		return
	}
	if author == nil {
		r.NotFound(c)
		return
	}

	identity := auth.FromContext(c)
	if err := r.follows.Delete(ctx, identity.UserID, author.ID); err != nil {
		r.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
