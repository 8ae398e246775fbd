// Package http exposes the public JSON API of the server: authentication,
// user profiles, posts, and media upload/download URLs.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	posts   *services.PostService
	media   *services.MediaService
}

func NewServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService, ms *services.MediaService) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		posts:   ps,
		media:   ms,
	}
}

// Router builds the gin engine with all routes registered. Split out from Run
// so tests can drive the handlers through httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/login", s.login)
	r.POST("/users", s.register)

	authorized := r.Group("/", s.accessTokenMiddleware())
	authorized.GET("/users/:id", s.getUser)
	authorized.POST("/posts", s.createPost)
	authorized.GET("/posts", s.listPosts)
	authorized.GET("/posts/:id", s.getPost)
	authorized.PUT("/posts/:id", s.updatePost)
	authorized.DELETE("/posts/:id", s.deletePost)
	authorized.POST("/posts/:id/attachments", s.createUploadURL)
	authorized.GET("/media/download-url", s.getDownloadURL)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
