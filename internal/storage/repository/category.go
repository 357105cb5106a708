package repository

import (
	"context"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type PostCategoryRepository struct {
	*Repository[*model.PostCategory]
}

func NewPostCategoryRepository(db *bun.DB, logger *zap.Logger) *PostCategoryRepository {
	return &PostCategoryRepository{
		Repository: New(db, "Category", func() *model.PostCategory { return new(model.PostCategory) }, logger),
	}
}

func (r *PostCategoryRepository) GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.PostCategory], error) {
	return r.Paginate(ctx, page, size)
}

// NameExists matches names case-insensitively among live categories.
func (r *PostCategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return r.Exists(ctx, WhereFold("name", name))
}
