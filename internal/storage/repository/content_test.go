package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/pkg/testsupport"
)

func TestCommentRepository_PagedByPost(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := NewCommentRepository(db, nil)
	ctx := context.Background()
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	p := testsupport.SeedPost(t, db, "p", nil, nil, base)
	other := testsupport.SeedPost(t, db, "other", nil, nil, base)
	u := testsupport.SeedUser(t, db, "grace", base)

	testsupport.SeedComment(t, db, p, u, "first", base.Add(time.Minute))
	testsupport.SeedComment(t, db, p, u, "second", base.Add(2*time.Minute))
	testsupport.SeedComment(t, db, other, u, "elsewhere", base.Add(3*time.Minute))
	gone := testsupport.SeedComment(t, db, p, u, "gone", base.Add(4*time.Minute))
	require.NoError(t, repo.SoftDelete(ctx, gone))

	got, err := repo.GetPagedByPost(ctx, p.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalItems)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "second", got.Items[0].Description)
	require.NotNil(t, got.Items[0].User)
	assert.Equal(t, "grace", got.Items[0].User.UserName)

	n, err := repo.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPostLikeRepository(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := NewPostLikeRepository(db, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	p := testsupport.SeedPost(t, db, "p", nil, nil, now)
	grace := testsupport.SeedUser(t, db, "grace", now)
	linus := testsupport.SeedUser(t, db, "linus", now)

	like := testsupport.SeedLike(t, db, p, grace, now)

	liked, err := repo.HasUserLiked(ctx, p.ID, grace.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasUserLiked(ctx, p.ID, linus.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err := repo.GetByPostAndUser(ctx, p.ID, grace.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, like.ID, got.ID)

	require.NoError(t, repo.SoftDelete(ctx, got))
	n, err := repo.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err = repo.GetByPostAndUser(ctx, p.ID, grace.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInterestRepository_Links(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := NewInterestRepository(db, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	p := testsupport.SeedPost(t, db, "p", nil, nil, now)
	u := testsupport.SeedUser(t, db, "grace", now)
	golang := testsupport.SeedInterest(t, db, "golang", now)
	art := testsupport.SeedInterest(t, db, "art", now)
	testsupport.SeedInterest(t, db, "cooking", now)

	require.NoError(t, repo.AttachToPost(ctx, p.ID, golang.ID))
	require.NoError(t, repo.AttachToPost(ctx, p.ID, golang.ID))
	require.NoError(t, repo.AttachToPost(ctx, p.ID, art.ID))
	require.NoError(t, repo.AttachToUser(ctx, u.ID, art.ID))

	got, err := repo.GetByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "art", got[0].Name)
	assert.Equal(t, "golang", got[1].Name)

	exists, err := repo.NameExists(ctx, "GoLang")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCommentRepository_GetPaged(t *testing.T) {
	db := testsupport.NewDB(t)
	repo := NewCommentRepository(db, nil)
	ctx := context.Background()
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	p := testsupport.SeedPost(t, db, "p", nil, nil, base)
	other := testsupport.SeedPost(t, db, "other", nil, nil, base)
	u := testsupport.SeedUser(t, db, "grace", base)
	testsupport.SeedComment(t, db, p, u, "first", base.Add(time.Minute))
	testsupport.SeedComment(t, db, other, u, "second", base.Add(2*time.Minute))
	gone := testsupport.SeedComment(t, db, p, u, "gone", base.Add(3*time.Minute))
	require.NoError(t, repo.SoftDelete(ctx, gone))

	got, err := repo.GetPaged(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalItems)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "second", got.Items[0].Description)
}
