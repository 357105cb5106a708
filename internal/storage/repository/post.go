package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

// PostRepository adds the post listings; every listing joins author and category.
type PostRepository struct {
	*Repository[*model.Post]
}

func NewPostRepository(db *bun.DB, logger *zap.Logger) *PostRepository {
	return &PostRepository{
		Repository: New(db, "Post", func() *model.Post { return new(model.Post) }, logger),
	}
}

func postRelations() SelectCriteria {
	return WithRelations("Admin", "Category")
}

// GetWithRelations fetches a live post with author and category loaded.
func (r *PostRepository) GetWithRelations(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return r.GetByID(ctx, id, postRelations())
}

func (r *PostRepository) GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Post], error) {
	return r.Paginate(ctx, page, size, postRelations())
}

func (r *PostRepository) GetByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (model.PagedResult[*model.Post], error) {
	return r.Paginate(ctx, page, size, postRelations(), Where("category_id", categoryID))
}

func (r *PostRepository) GetByAdmin(ctx context.Context, adminID uuid.UUID, page, size int) (model.PagedResult[*model.Post], error) {
	return r.Paginate(ctx, page, size, postRelations(), Where("admin_id", adminID))
}

// GetRecentByCategory lists a category's posts created since the given time,
// newest first. A zero since lists the whole category.
func (r *PostRepository) GetRecentByCategory(ctx context.Context, categoryID uuid.UUID, since time.Time, page, size int) (model.PagedResult[*model.Post], error) {
	return r.Paginate(ctx, page, size, postRelations(), Where("category_id", categoryID), CreatedSince(since))
}

// SetLikesCount patches the denormalised like counter without loading the post.
func (r *PostRepository) SetLikesCount(ctx context.Context, postID uuid.UUID, count int) error {
	_, err := r.DB().NewUpdate().
		Model((*model.Post)(nil)).
		Set("likes_count = ?", count).
		Set("updated_at = ?", r.now()).
		Where("id = ?", postID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update likes count: %w", err)
	}
	return nil
}
