package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/pkg/testsupport"
)

func TestCommentService_Thread(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p := testsupport.SeedPost(t, h.db, "p", nil, nil, h.clock.Now())
	other := testsupport.SeedPost(t, h.db, "other", nil, nil, h.clock.Now())
	grace := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())

	h.tick()
	root, err := h.comments.Create(ctx, dto.CreateCommentDto{PostID: p.ID, UserID: grace.ID, Description: "first!"})
	require.NoError(t, err)
	require.True(t, root.IsSuccess())
	assert.Equal(t, "grace", root.MustValue().UserName)

	rootID := root.MustValue().CommentID
	h.tick()
	reply, err := h.comments.Create(ctx, dto.CreateCommentDto{PostID: p.ID, UserID: grace.ID, Description: "reply", ParentCommentID: &rootID})
	require.NoError(t, err)
	require.True(t, reply.IsSuccess())
	assert.Equal(t, &rootID, reply.MustValue().ParentCommentID)

	cross, err := h.comments.Create(ctx, dto.CreateCommentDto{PostID: other.ID, UserID: grace.ID, Description: "x", ParentCommentID: &rootID})
	require.NoError(t, err)
	require.True(t, cross.IsFailure())
	assert.Equal(t, result.KindValidation, cross.Err().Kind)

	page, err := h.comments.GetPagedByPost(ctx, p.ID, 1, 10)
	require.NoError(t, err)
	require.True(t, page.IsSuccess())
	assert.Equal(t, 2, page.MustValue().TotalItems)
	assert.Equal(t, "reply", page.MustValue().Items[0].Description)
	assert.Equal(t, "grace", page.MustValue().Items[0].UserName)

	empty, err := h.comments.GetPagedByPost(ctx, other.ID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, result.KindNotFound, empty.Err().Kind)
}

func TestCommentService_EditAndPin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p := testsupport.SeedPost(t, h.db, "p", nil, nil, h.clock.Now())
	grace := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())
	c := testsupport.SeedComment(t, h.db, p, grace, "typo", h.clock.Now())

	res, err := h.comments.Update(ctx, c.ID, dto.UpdateCommentDto{Description: "fixed"})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.True(t, res.MustValue().Edited)
	assert.Equal(t, "fixed", res.MustValue().Description)

	res, err = h.comments.Pin(ctx, c.ID, true)
	require.NoError(t, err)
	assert.True(t, res.MustValue().IsPinned)
	assert.True(t, res.MustValue().Edited)

	res, err = h.comments.Update(ctx, c.ID, dto.UpdateCommentDto{Description: "  "})
	require.NoError(t, err)
	assert.Equal(t, "400", res.Err().Code)

	del, err := h.comments.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, del.IsSuccess())

	got, err := h.comments.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, result.KindNotFound, got.Err().Kind)
}

func TestCommentService_GetPaged(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	empty, err := h.comments.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, empty.IsFailure())
	assert.Equal(t, "No comments found.", empty.Err().Message)

	p := testsupport.SeedPost(t, h.db, "p", nil, nil, h.clock.Now())
	other := testsupport.SeedPost(t, h.db, "other", nil, nil, h.clock.Now())
	grace := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())
	testsupport.SeedComment(t, h.db, p, grace, "on p", h.clock.Now().Add(time.Minute))
	testsupport.SeedComment(t, h.db, other, grace, "on other", h.clock.Now().Add(2*time.Minute))

	// The empty page above is cached for one TTL.
	h.clock.Advance(h.aside.TTL())

	page, err := h.comments.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, page.IsSuccess())
	assert.Equal(t, 2, page.MustValue().TotalItems)
	assert.Equal(t, "on other", page.MustValue().Items[0].Description)
}

func TestCommentService_CountByPost(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p := testsupport.SeedPost(t, h.db, "p", nil, nil, h.clock.Now())
	grace := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())

	zero, err := h.comments.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, zero.IsSuccess())
	assert.Zero(t, zero.MustValue())

	root := testsupport.SeedComment(t, h.db, p, grace, "root", h.clock.Now().Add(time.Minute))
	rootID := root.ID
	_, err = h.comments.Create(ctx, dto.CreateCommentDto{PostID: p.ID, UserID: grace.ID, Description: "reply", ParentCommentID: &rootID})
	require.NoError(t, err)
	gone := testsupport.SeedComment(t, h.db, p, grace, "gone", h.clock.Now().Add(2*time.Minute))
	_, err = h.comments.Delete(ctx, gone.ID)
	require.NoError(t, err)

	count, err := h.comments.CountByPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count.MustValue())

	missing, err := h.comments.CountByPost(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, result.KindNotFound, missing.Err().Kind)
}
