package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/result"
)

func TestCategoryService_CreateRejectsDuplicateName(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Go"})
	require.NoError(t, err)
	require.True(t, first.IsSuccess())
	created := first.MustValue()
	assert.Equal(t, "Go", created.CategoryName)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	second, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "go "})
	require.NoError(t, err)
	require.True(t, second.IsFailure())
	assert.Equal(t, result.KindConflict, second.Err().Kind)
	assert.Equal(t, "409", second.Err().Code)

	total, err := h.categoryRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total, "a rejected duplicate must not write a row")
}

func TestCategoryService_CreateValidation(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too long", "abcdefghijklmnopqrstuvwxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.categories.Create(context.Background(), dto.CreateCategoryDto{CategoryName: tt.in})
			require.NoError(t, err)
			require.True(t, res.IsFailure())
			assert.Equal(t, result.KindValidation, res.Err().Kind)
			assert.Equal(t, "400", res.Err().Code)
		})
	}
}

func TestCategoryService_GetPagedPaginates(t *testing.T) {
	codecs := []cache.Codec{cache.JSONCodec{}, cache.MsgpackCodec{}}

	for _, codec := range codecs {
		t.Run(codec.Name(), func(t *testing.T) {
			h := newHarness(t, cache.WithCodec(codec))
			ctx := context.Background()

			for i := 0; i < 25; i++ {
				h.tick()
				res, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: fmt.Sprintf("cat-%02d", i)})
				require.NoError(t, err)
				require.True(t, res.IsSuccess())
			}

			tests := []struct {
				page, size int
				wantItems  int
				wantFirst  string
			}{
				{1, 10, 10, "cat-24"},
				{2, 10, 10, "cat-14"},
				{3, 10, 5, "cat-04"},
				{1, 25, 25, "cat-24"},
				{2, 7, 7, "cat-17"},
				{4, 7, 4, "cat-03"},
			}

			for _, tt := range tests {
				for round := 0; round < 2; round++ {
					res, err := h.categories.GetPaged(ctx, tt.page, tt.size)
					require.NoError(t, err)
					require.True(t, res.IsSuccess(), "page %d size %d", tt.page, tt.size)

					page := res.MustValue()
					assert.Equal(t, 25, page.TotalItems)
					assert.Len(t, page.Items, tt.wantItems)
					assert.Equal(t, tt.wantFirst, page.Items[0].CategoryName)
					assert.Equal(t, tt.page, page.Page)
					assert.Equal(t, tt.size, page.Size)
				}
			}
		})
	}
}

// Empty pages are NotFound failures rather than empty successes, and the
// empty page is cached like any other.
func TestCategoryService_GetPagedEmptyIsNotFound(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindNotFound, res.Err().Kind)
	assert.Equal(t, "404", res.Err().Code)
	assert.Equal(t, "No categories found.", res.Err().Message)

	key := cache.NewNamespacedKeySerializer("categories").SerializeKey("GetPaged", 1, 10)
	assert.True(t, h.cache.has(key))

	_, err = h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Go"})
	require.NoError(t, err)

	res, err = h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, res.IsFailure(), "cached empty page is served until it expires")

	h.clock.Advance(cache.DefaultTTL + time.Second)
	res, err = h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 1, res.MustValue().TotalItems)
}

func TestCategoryService_GetPagedValidatesBeforeCache(t *testing.T) {
	h := newHarness(t)

	for _, tc := range [][2]int{{0, 10}, {1, 0}, {-1, 5}, {1, -3}, {math.MaxInt/10 + 2, 10}, {2, math.MaxInt}} {
		res, err := h.categories.GetPaged(context.Background(), tc[0], tc[1])
		require.NoError(t, err)
		require.True(t, res.IsFailure())
		assert.Equal(t, "400", res.Err().Code)
		assert.Equal(t, invalidPaginationMessage, res.Err().Message)
	}
	assert.Zero(t, h.cache.sets, "invalid pagination must not reach the cache")
}

// Writes do not evict cached pages: a listing is stale until its TTL passes.
func TestCategoryService_StalenessWindow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b"} {
		h.tick()
		_, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: name})
		require.NoError(t, err)
	}

	res, err := h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.MustValue().TotalItems)

	h.tick()
	_, err = h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "c"})
	require.NoError(t, err)

	h.clock.Advance(cache.DefaultTTL - 2*time.Second)
	res, err = h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.MustValue().TotalItems, "read within the TTL may be stale")

	h.clock.Advance(2 * time.Second)
	res, err = h.categories.GetPaged(ctx, 1, 10)
	require.NoError(t, err)
	page := res.MustValue()
	assert.Equal(t, 3, page.TotalItems, "read after the TTL reflects the write")
	assert.Equal(t, "c", page.Items[0].CategoryName)
}

func TestCategoryService_DeleteTwiceIsNotFound(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Go"})
	require.NoError(t, err)
	id := created.MustValue().CategoryID

	res, err := h.categories.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess())

	res, err = h.categories.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindNotFound, res.Err().Kind)
	assert.Equal(t, fmt.Sprintf("Category with ID %s was not found.", id), res.Err().Message)

	got, err := h.categories.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.IsFailure())
}

func TestCategoryService_Update(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	goCat, _ := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Go"})
	_, _ = h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Rust"})
	id := goCat.MustValue().CategoryID

	h.clock.Advance(time.Hour)
	res, err := h.categories.Update(ctx, id, dto.UpdateCategoryDto{CategoryName: "Golang"})
	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, "Golang", res.MustValue().CategoryName)
	assert.True(t, res.MustValue().UpdatedAt.After(res.MustValue().CreatedAt))

	res, err = h.categories.Update(ctx, id, dto.UpdateCategoryDto{CategoryName: "rust"})
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindConflict, res.Err().Kind)

	res, err = h.categories.Update(ctx, id, dto.UpdateCategoryDto{CategoryName: "GOLANG"})
	require.NoError(t, err)
	assert.True(t, res.IsSuccess(), "renaming to a case variant of its own name is allowed")

	res, err = h.categories.Update(ctx, uuid.New(), dto.UpdateCategoryDto{CategoryName: "x"})
	require.NoError(t, err)
	assert.Equal(t, result.KindNotFound, res.Err().Kind)
}

func TestCategoryService_CanceledContext(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := h.categories.Create(ctx, dto.CreateCategoryDto{CategoryName: "Go"})
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, result.KindCanceled, res.Err().Kind)
}
