package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/pkg/testsupport"
)

func TestInterestService(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.interests.Create(ctx, dto.CreateInterestDto{Name: "Golang"})
	require.NoError(t, err)
	require.True(t, created.IsSuccess())

	dup, err := h.interests.Create(ctx, dto.CreateInterestDto{Name: "golang"})
	require.NoError(t, err)
	assert.Equal(t, result.KindConflict, dup.Err().Kind)
	assert.Equal(t, "Interest with name already exists.", dup.Err().Message)

	p := testsupport.SeedPost(t, h.db, "p", nil, nil, h.clock.Now())
	u := testsupport.SeedUser(t, h.db, "grace", h.clock.Now())
	id := created.MustValue().InterestID

	attach, err := h.interests.AttachToPost(ctx, p.ID, id)
	require.NoError(t, err)
	assert.True(t, attach.IsSuccess())

	attach, err = h.interests.AttachToUser(ctx, u.ID, id)
	require.NoError(t, err)
	assert.True(t, attach.IsSuccess())

	attach, err = h.interests.AttachToPost(ctx, p.ID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, result.KindNotFound, attach.Err().Kind)

	tags, err := h.interests.GetByPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, tags.MustValue(), 1)
	assert.Equal(t, "Golang", tags.MustValue()[0].Name)

	paged, err := h.interests.GetPaged(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, paged.MustValue().TotalItems)
}
