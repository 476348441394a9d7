package web

import (
	"database/sql"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quillworks/quill/internal/auth"
	"github.com/quillworks/quill/internal/feed"
	"github.com/quillworks/quill/internal/models"
)

// Index renders the paginated global feed
func (r *Router) Index(c *gin.Context) {
	ctx := c.Request.Context()
	number := feed.ParseNumber(c.Query("page"))
	offset, limit := feed.Window(number, r.cfg.Feed.PostsPerPage)

	posts, err := r.posts.ListRecent(ctx, limit, offset)
	if err != nil {
		r.serverError(c, err)
		return
	}
	total, err := r.posts.CountAll(ctx)
	if err != nil {
		r.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"page_obj": posts,
		"page":     feed.Page{Number: number, Size: r.cfg.Feed.PostsPerPage, Total: total},
		"user":     auth.FromContext(c),
	})
}

// GroupList renders the paginated feed of one group
func (r *Router) GroupList(c *gin.Context) {
	ctx := c.Request.Context()
	group, err := r.groups.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		r.serverError(c, err)
		return
	}
	if group == nil {
		r.NotFound(c)
		return
	}

	number := feed.ParseNumber(c.Query("page"))
	offset, limit := feed.Window(number, r.cfg.Feed.PostsPerPage)

	posts, err := r.posts.ListByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		r.serverError(c, err)
		return
	}
	total, err := r.posts.CountByGroup(ctx, group.ID)
	if err != nil {
		r.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "group_list.html", gin.H{
		"group":    group,
		"page_obj": posts,
		"page":     feed.Page{Number: number, Size: r.cfg.Feed.PostsPerPage, Total: total},
		"user":     auth.FromContext(c),
	})
}

// Profile renders an author's paginated feed along with whether the
// viewer already follows them
func (r *Router) Profile(c *gin.Context) {
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

	number := feed.ParseNumber(c.Query("page"))
	offset, limit := feed.Window(number, r.cfg.Feed.PostsPerPage)

	posts, err := r.posts.ListByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		r.serverError(c, err)
		return
	}
	total, err := r.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		r.serverError(c, err)
		return
	}

	identity := auth.FromContext(c)
	following := false
	if identity.IsAuthenticated() && identity.UserID != author.ID {
		following, err = r.follows.Exists(ctx, identity.UserID, author.ID)
		if err != nil {
			r.serverError(c, err)
			return
		}
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"author":    author,
		"following": following,
		"page_obj":  posts,
		"page":      feed.Page{Number: number, Size: r.cfg.Feed.PostsPerPage, Total: total},
		"user":      identity,
	})
}

// PostDetail renders a single post, its comments and the inline
// comment form. Detail pages are never cached, so a fresh comment is
// visible immediately.
func (r *Router) PostDetail(c *gin.Context) {
	ctx := c.Request.Context()
	post := r.lookupPost(c)
	if post == nil {
		return
	}

	comments, err := r.comments.ListByPost(ctx, post.ID)
	if err != nil {
		r.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":     post,
		"comments": comments,
		"user":     auth.FromContext(c),
	})
}

// PostCreate renders the creation form on GET and creates the post on
// POST, redirecting to the author's profile feed.
func (r *Router) PostCreate(c *gin.Context) {
	ctx := c.Request.Context()
	identity := auth.FromContext(c)

	if c.Request.Method == http.MethodGet {
		r.renderPostForm(c, nil, nil)
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		r.renderPostForm(c, nil, err)
		return
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: identity.UserID,
	}
	if !r.applyGroup(c, post, form.Group) {
		return
	}
	if !r.applyImage(c, post) {
		return
	}

	if err := r.posts.Create(ctx, post); err != nil {
		r.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+identity.Username+"/")
}

// PostEdit renders the edit form on GET and updates the post on POST.
// Non-authors still get the read-only form on GET; only the mutation
// is guarded, and a non-author POST bounces to the detail page.
func (r *Router) PostEdit(c *gin.Context) {
	ctx := c.Request.Context()
	post := r.lookupPost(c)
	if post == nil {
		return
	}

	identity := auth.FromContext(c)
	detailURL := "/posts/" + strconv.FormatInt(post.ID, 10) + "/"

	if c.Request.Method == http.MethodGet {
		r.renderPostForm(c, post, nil)
		return
	}

	if !auth.CanEditPost(identity, post) {
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		r.renderPostForm(c, post, err)
		return
	}

	post.Text = form.Text
	if !r.applyGroup(c, post, form.Group) {
		return
	}
	if !r.applyImage(c, post) {
		return
	}

	if err := r.posts.Update(ctx, post); err != nil {
		r.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, detailURL)
}

// lookupPost resolves the :post_id route param. A malformed or
// unknown id renders the 404 page and returns nil.
func (r *Router) lookupPost(c *gin.Context) *models.Post {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		r.NotFound(c)
		return nil
	}
	post, err := r.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		r.serverError(c, err)
		return nil
	}
	if post == nil {
		r.NotFound(c)
		return nil
	}
	return post
}

// renderPostForm renders create_post.html for both the create and
// edit flows. A non-nil bindErr re-renders with field errors and no
// state change.
func (r *Router) renderPostForm(c *gin.Context, post *models.Post, bindErr error) {
	groups, err := r.groups.List(c.Request.Context())
	if err != nil {
		r.serverError(c, err)
		return
	}

	data := gin.H{
		"is_edit": post != nil,
		"post":    post,
		"groups":  groups,
		"user":    auth.FromContext(c),
	}
	if bindErr != nil {
		var herr *Error
		if errors.As(bindErr, &herr) {
			data["errors"] = herr.Message
		} else {
			// gin binding failures; the only required field is text
			data["errors"] = "text is required"
		}
	}
	c.HTML(http.StatusOK, "create_post.html", data)
}

// applyGroup validates the submitted group id and sets the reference.
// Zero clears the group. Returns false after responding on failure.
func (r *Router) applyGroup(c *gin.Context, post *models.Post, groupID int64) bool {
	if groupID == 0 {
		post.GroupID = sql.NullInt64{}
		return true
	}
	group, err := r.groups.GetByID(c.Request.Context(), groupID)
	if err != nil {
		r.serverError(c, err)
		return false
	}
	if group == nil {
		r.renderPostForm(c, post, NewError(http.StatusBadRequest, "unknown group"))
		return false
	}
	post.GroupID = sql.NullInt64{Int64: group.ID, Valid: true}
	return true
}

// applyImage stores an uploaded image, if any, under the posts/
// namespace with its original filename. Returns false after
// responding on failure.
func (r *Router) applyImage(c *gin.Context, post *models.Post) bool {
	file, err := c.FormFile("image")
	if err != nil {
		// No file submitted; keep whatever the post already has.
		return true
	}
	name, err := r.saveUpload(c, file)
	if err != nil {
		r.serverError(c, err)
		return false
	}
	post.Image = name
	return true
}

func (r *Router) saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := filepath.Base(file.Filename)
	dir := filepath.Join(r.cfg.Media.Root, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return "posts/" + filename, nil
}
