// Package httpapi exposes the services over a gin router under /api/v1.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/service"
)

// Services are the handlers' collaborators.
type Services struct {
	Posts      *service.PostService
	Categories *service.CategoryService
	Interests  *service.InterestService
	Admins     *service.AdminService
	Comments   *service.CommentService
	Likes      *service.LikeService
	Users      *service.UserService
}

// Options tune the router.
type Options struct {
	// AllowedOrigins lists CORS origins; "*" or an empty list allows all.
	AllowedOrigins []string
	Mode           string
}

type api struct {
	svc    Services
	logger *zap.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(svc Services, opts Options, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), cors.New(corsConfig(opts.AllowedOrigins)))

	a := &api{svc: svc, logger: logger.Named("http")}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	a.registerPosts(v1.Group("/posts"))
	a.registerCategories(v1.Group("/categories"))
	a.registerInterests(v1.Group("/interests"))
	a.registerAdmins(v1.Group("/admins"))
	a.registerComments(v1.Group("/comments"))
	a.registerUsers(v1.Group("/users"))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorBody{Code: "404", Message: "Route not found."})
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
