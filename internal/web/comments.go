package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quillworks/quill/internal/auth"
	"github.com/quillworks/quill/internal/models"
)

// AddComment creates a comment on POST. A GET is a no-op redirect to
// the post detail page: comments are submitted inline from there, so
// there is no standalone form to render.
func (r *Router) AddComment(c *gin.Context) {
	post := r.lookupPost(c)
	if post == nil {
		return
	}
	detailURL := "/posts/" + strconv.FormatInt(post.ID, 10) + "/"

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		// Invalid submission mutates nothing
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	identity := auth.FromContext(c)
	comment := &models.Comment{
		Text:     form.Text,
		PostID:   post.ID,
		AuthorID: identity.UserID,
	}
	if err := r.comments.Create(c.Request.Context(), comment); err != nil {
		r.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}
