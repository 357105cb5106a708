package testsupport

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/storage"
)

// NewDB opens a private in-memory SQLite database with the schema created.
// The database is closed when the test ends.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	ctx := context.Background()
	db, err := storage.Open(ctx, storage.Options{
		Driver: storage.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.CreateSchema(ctx, db); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}
	return db
}

// Clock is a manually advanced time source.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at a fixed UTC instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func insert(t *testing.T, db bun.IDB, record any) {
	t.Helper()
	if _, err := db.NewInsert().Model(record).Exec(context.Background()); err != nil {
		t.Fatalf("failed to seed %T: %v", record, err)
	}
}

// SeedAdmin inserts an active admin.
func SeedAdmin(t *testing.T, db bun.IDB, userName string, createdAt time.Time) *model.Admin {
	t.Helper()
	a := &model.Admin{
		FirstName: "Ada",
		LastName:  "Lovelace",
		UserName:  userName,
		Email:     userName + "@linkup.test",
		Password:  "x",
		Status:    model.AdminStatusActive,
	}
	a.ID = uuid.New()
	a.CreatedAt = createdAt
	insert(t, db, a)
	return a
}

// SeedUser inserts an active user.
func SeedUser(t *testing.T, db bun.IDB, userName string, createdAt time.Time) *model.User {
	t.Helper()
	u := &model.User{
		FirstName: "Grace",
		LastName:  "Hopper",
		UserName:  userName,
		Email:     userName + "@linkup.test",
		Password:  "x",
		Status:    model.UserStatusActive,
	}
	u.ID = uuid.New()
	u.CreatedAt = createdAt
	insert(t, db, u)
	return u
}

func SeedCategory(t *testing.T, db bun.IDB, name string, createdAt time.Time) *model.PostCategory {
	t.Helper()
	c := &model.PostCategory{Name: name}
	c.ID = uuid.New()
	c.CreatedAt = createdAt
	insert(t, db, c)
	return c
}

func SeedInterest(t *testing.T, db bun.IDB, name string, createdAt time.Time) *model.Interest {
	t.Helper()
	i := &model.Interest{Name: name}
	i.ID = uuid.New()
	i.CreatedAt = createdAt
	insert(t, db, i)
	return i
}

// SeedPost inserts a post; admin and category may be nil.
func SeedPost(t *testing.T, db bun.IDB, title string, admin *model.Admin, category *model.PostCategory, createdAt time.Time) *model.Post {
	t.Helper()
	p := &model.Post{Title: title, Content: "content of " + title}
	p.ID = uuid.New()
	p.CreatedAt = createdAt
	if admin != nil {
		p.AdminID = &admin.ID
	}
	if category != nil {
		p.CategoryID = &category.ID
	}
	insert(t, db, p)
	return p
}

func SeedComment(t *testing.T, db bun.IDB, post *model.Post, user *model.User, text string, createdAt time.Time) *model.Comment {
	t.Helper()
	c := &model.Comment{Description: text, PostID: post.ID, UserID: user.ID}
	c.ID = uuid.New()
	c.CreatedAt = createdAt
	insert(t, db, c)
	return c
}

func SeedLike(t *testing.T, db bun.IDB, post *model.Post, user *model.User, createdAt time.Time) *model.PostLike {
	t.Helper()
	l := &model.PostLike{PostID: post.ID, UserID: user.ID}
	l.ID = uuid.New()
	l.CreatedAt = createdAt
	insert(t, db, l)
	return l
}
