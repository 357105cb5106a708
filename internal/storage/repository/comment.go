package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type CommentRepository struct {
	*Repository[*model.Comment]
}

func NewCommentRepository(db *bun.DB, logger *zap.Logger) *CommentRepository {
	return &CommentRepository{
		Repository: New(db, "Comment", func() *model.Comment { return new(model.Comment) }, logger),
	}
}

// GetPaged lists every live comment newest first with its author.
func (r *CommentRepository) GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Comment], error) {
	return r.Paginate(ctx, page, size, WithRelations("User"))
}

// GetPagedByPost lists a post's comments newest first with their authors.
func (r *CommentRepository) GetPagedByPost(ctx context.Context, postID uuid.UUID, page, size int) (model.PagedResult[*model.Comment], error) {
	return r.Paginate(ctx, page, size, WithRelations("User"), Where("post_id", postID))
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	return r.Count(ctx, Where("post_id", postID))
}
