package web

// PostForm carries a post creation or edit submission. Group is
// optional; zero means no group. The image arrives as a multipart
// file and is handled separately.
type PostForm struct {
	Text  string `form:"text" binding:"required"`
	Group int64  `form:"group"`
}

// CommentForm carries an inline comment submission.
type CommentForm struct {
	Text string `form:"text" binding:"required"`
}
