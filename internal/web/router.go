package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quillworks/quill/internal/auth"
	"github.com/quillworks/quill/internal/cache"
	"github.com/quillworks/quill/internal/db"
	"github.com/quillworks/quill/pkg/config"
	"github.com/quillworks/quill/pkg/logging"
)

// Router holds the stores and configuration the handlers need
type Router struct {
	cfg      *config.Config
	users    UserStore
	groups   GroupStore
	posts    PostStore
	comments CommentStore
	follows  FollowStore
	pages    cache.PageStore
	logger   *zap.Logger
}

// NewRouter creates a new router backed by the database repositories
func NewRouter(cfg *config.Config, database *db.DB, pages cache.PageStore) *Router {
	repo := db.NewRepository(database.DB)

	return &Router{
		cfg:      cfg,
		users:    db.NewUserRepository(repo),
		groups:   db.NewGroupRepository(repo),
		posts:    db.NewPostRepository(repo),
		comments: db.NewCommentRepository(repo),
		follows:  db.NewFollowRepository(repo),
		pages:    pages,
		logger:   logging.GetLogger().With(zap.String("component", "web-router")),
	}
}

// SetupRoutes sets up all routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.SetHTMLTemplate(Templates())
	engine.Use(traceRequests)
	engine.Use(auth.CurrentUser(&r.cfg.Auth))

	// Health check endpoint
	engine.GET("/health", r.healthHandler)

	// Uploaded media
	engine.Static("/media", r.cfg.Media.Root)

	// Public listings. Only the global feed is cached; group, profile
	// and detail pages always render fresh.
	engine.GET("/", cache.PageCache(r.pages, r.cfg.Feed.IndexCacheTTL), r.Index)
	engine.GET("/group/:slug/", r.GroupList)
	engine.GET("/profile/:username/", r.Profile)
	engine.GET("/posts/:post_id/", r.PostDetail)

	// Mutating routes require an authenticated identity
	authed := engine.Group("", auth.LoginRequired(r.cfg.Auth.LoginURL))
	authed.GET("/create/", r.PostCreate)
	authed.POST("/create/", r.PostCreate)
	authed.GET("/posts/:post_id/edit/", r.PostEdit)
	authed.POST("/posts/:post_id/edit/", r.PostEdit)
	authed.GET("/posts/:post_id/comment/", r.AddComment)
	authed.POST("/posts/:post_id/comment/", r.AddComment)
	authed.POST("/profile/:username/follow/", r.ProfileFollow)
	authed.POST("/profile/:username/unfollow/", r.ProfileUnfollow)
	authed.GET("/follow/", r.FollowIndex)

	engine.NoRoute(r.NotFound)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "quill",
	})
}
