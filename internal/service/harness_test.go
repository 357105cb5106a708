package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
	"github.com/Gabo-RDev/LinkUp/pkg/testsupport"
)

func init() {
	mapper.PasswordCost = bcrypt.MinCost
}

// clockCache is a CacheService whose entries expire on a test clock.
type clockCache struct {
	mu    sync.Mutex
	clock *testsupport.Clock
	data  map[string]clockEntry
	sets  int
}

type clockEntry struct {
	value     []byte
	expiresAt time.Time
}

func newClockCache(clock *testsupport.Clock) *clockCache {
	return &clockCache{clock: clock, data: make(map[string]clockEntry)}
}

func (c *clockCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.data[key]
	if !ok || !c.clock.Now().Before(e.expiresAt) {
		return nil, cache.ErrCacheMiss
	}
	return e.value, nil
}

func (c *clockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = clockEntry{value: value, expiresAt: c.clock.Now().Add(ttl)}
	c.sets++
	return nil
}

func (c *clockCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *clockCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok
}

type stubUploader struct {
	url   string
	err   error
	calls int
}

func (u *stubUploader) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	_, _ = io.ReadAll(content)
	return u.url, nil
}

// captureNotifier keeps every issued code value.
type captureNotifier struct {
	mu    sync.Mutex
	codes []string
	err   error
}

func (n *captureNotifier) NotifyCode(ctx context.Context, user *model.User, code *model.Code) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code.Value)
	return n.err
}

func (n *captureNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.codes) == 0 {
		return ""
	}
	return n.codes[len(n.codes)-1]
}

type harness struct {
	db    *bun.DB
	clock *testsupport.Clock
	cache *clockCache
	aside *cache.Aside

	postRepo     *repository.PostRepository
	categoryRepo *repository.PostCategoryRepository
	interestRepo *repository.InterestRepository
	adminRepo    *repository.AdminRepository
	userRepo     *repository.UserRepository
	commentRepo  *repository.CommentRepository
	likeRepo     *repository.PostLikeRepository
	codeRepo     *repository.CodeRepository

	uploader *stubUploader

	posts      *PostService
	categories *CategoryService
	interests  *InterestService
	admins     *AdminService
	comments   *CommentService
	likes      *LikeService
	users      *UserService
	notifier   *captureNotifier
}

func newHarness(t *testing.T, opts ...cache.AsideOption) *harness {
	t.Helper()

	h := &harness{
		db:       testsupport.NewDB(t),
		clock:    testsupport.NewClock(),
		uploader: &stubUploader{url: "https://cdn.test/photo.png"},
	}
	h.cache = newClockCache(h.clock)
	h.aside = cache.NewAside(h.cache, opts...)

	h.postRepo = repository.NewPostRepository(h.db, nil)
	h.categoryRepo = repository.NewPostCategoryRepository(h.db, nil)
	h.interestRepo = repository.NewInterestRepository(h.db, nil)
	h.adminRepo = repository.NewAdminRepository(h.db, nil)
	h.userRepo = repository.NewUserRepository(h.db, nil)
	h.commentRepo = repository.NewCommentRepository(h.db, nil)
	h.likeRepo = repository.NewPostLikeRepository(h.db, nil)
	h.codeRepo = repository.NewCodeRepository(h.db, nil)

	for _, r := range []interface{ SetClock(repository.Clock) }{
		h.postRepo, h.categoryRepo, h.interestRepo, h.adminRepo, h.userRepo, h.commentRepo, h.likeRepo, h.codeRepo,
	} {
		r.SetClock(h.clock.Now)
	}

	h.posts = NewPostService(h.postRepo, h.categoryRepo, h.adminRepo, h.aside, nil)
	h.categories = NewCategoryService(h.categoryRepo, h.aside, nil)
	h.interests = NewInterestService(h.interestRepo, h.postRepo, h.userRepo, h.aside, nil)
	h.admins = NewAdminService(h.adminRepo, h.userRepo, h.uploader, h.aside, nil)
	h.comments = NewCommentService(h.commentRepo, h.postRepo, h.userRepo, h.aside, nil)
	h.likes = NewLikeService(h.likeRepo, h.postRepo, h.userRepo, h.aside, nil)
	h.notifier = &captureNotifier{}
	h.users = NewUserService(h.userRepo, h.codeRepo, nil, WithCodeNotifier(h.notifier))
	h.users.now = h.clock.Now
	return h
}

// tick advances the clock so consecutive inserts get distinct timestamps.
func (h *harness) tick() time.Time {
	h.clock.Advance(time.Second)
	return h.clock.Now()
}
