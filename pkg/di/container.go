package di

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/config"
	"github.com/Gabo-RDev/LinkUp/internal/httpapi"
	"github.com/Gabo-RDev/LinkUp/internal/media"
	"github.com/Gabo-RDev/LinkUp/internal/service"
	"github.com/Gabo-RDev/LinkUp/internal/storage"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

// newAside builds the cache backend; tests swap it to observe Close.
var newAside = cache.NewAsideFromConfig

// Container owns the process wide singletons: the database handle, the
// cache backend, the media uploader and the services built on top of them.
type Container struct {
	config       *config.Config
	logger       *zap.Logger
	db           *bun.DB
	cacheService cache.CacheService
	aside        *cache.Aside
	uploader     media.Uploader
	services     httpapi.Services
}

// Repositories groups the data access layer so it can be built once and
// handed to the services.
type Repositories struct {
	Posts      *repository.PostRepository
	Categories *repository.PostCategoryRepository
	Interests  *repository.InterestRepository
	Admins     *repository.AdminRepository
	Users      *repository.UserRepository
	Comments   *repository.CommentRepository
	Likes      *repository.PostLikeRepository
	Codes      *repository.CodeRepository
}

// NewContainer connects to the store, creates the schema when AutoMigrate is
// set, and wires the cache, the uploader and every service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := storage.Open(ctx, cfg.Database.Options(), logger.Named("storage"))
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := storage.CreateSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	aside, cacheService, err := newAside(ctx, cfg.Cache, logger.Named("cache"))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to build cache: %w", err)
	}

	uploader, err := media.New(cfg.Media, logger.Named("media"))
	if err != nil {
		closeCache(cacheService, logger)
		_ = db.Close()
		return nil, fmt.Errorf("failed to build media uploader: %w", err)
	}

	c := &Container{
		config:       cfg,
		logger:       logger,
		db:           db,
		cacheService: cacheService,
		aside:        aside,
		uploader:     uploader,
	}
	c.services = NewServices(NewRepositories(db, logger), aside, uploader, cfg.RecentPostsWindow, logger)

	return c, nil
}

// NewRepositories builds one repository per table.
func NewRepositories(db *bun.DB, logger *zap.Logger) Repositories {
	return Repositories{
		Posts:      repository.NewPostRepository(db, logger),
		Categories: repository.NewPostCategoryRepository(db, logger),
		Interests:  repository.NewInterestRepository(db, logger),
		Admins:     repository.NewAdminRepository(db, logger),
		Users:      repository.NewUserRepository(db, logger),
		Comments:   repository.NewCommentRepository(db, logger),
		Likes:      repository.NewPostLikeRepository(db, logger),
		Codes:      repository.NewCodeRepository(db, logger),
	}
}

// NewServices wires the services over repos and the shared cache-aside helper.
func NewServices(repos Repositories, aside *cache.Aside, uploader media.Uploader, recentWindow time.Duration, logger *zap.Logger) httpapi.Services {
	return httpapi.Services{
		Posts:      service.NewPostService(repos.Posts, repos.Categories, repos.Admins, aside, logger, service.WithRecentWindow(recentWindow)),
		Categories: service.NewCategoryService(repos.Categories, aside, logger),
		Interests:  service.NewInterestService(repos.Interests, repos.Posts, repos.Users, aside, logger),
		Admins:     service.NewAdminService(repos.Admins, repos.Users, uploader, aside, logger),
		Comments:   service.NewCommentService(repos.Comments, repos.Posts, repos.Users, aside, logger),
		Likes:      service.NewLikeService(repos.Likes, repos.Posts, repos.Users, aside, logger),
		Users:      service.NewUserService(repos.Users, repos.Codes, logger),
	}
}

// Router returns a gin engine serving the services.
func (c *Container) Router() *gin.Engine {
	return httpapi.NewRouter(c.services, httpapi.Options{
		AllowedOrigins: c.config.HTTP.AllowedOrigins,
		Mode:           c.config.HTTP.Mode,
	}, c.logger)
}

// Services returns the wired services.
func (c *Container) Services() httpapi.Services {
	return c.services
}

// CacheService returns the singleton cache backend.
func (c *Container) CacheService() cache.CacheService {
	return c.cacheService
}

// Aside returns the cache-aside helper shared by every service.
func (c *Container) Aside() *cache.Aside {
	return c.aside
}

// DB returns the database handle.
func (c *Container) DB() *bun.DB {
	return c.db
}

// Config returns the configuration the container was built from.
func (c *Container) Config() *config.Config {
	return c.config
}

// Close releases the cache backend, when it holds a connection, and the database.
func (c *Container) Close() error {
	closeCache(c.cacheService, c.logger)
	return c.db.Close()
}

func closeCache(svc cache.CacheService, logger *zap.Logger) {
	if closer, ok := svc.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("Failed to close cache", zap.Error(err))
		}
	}
}
