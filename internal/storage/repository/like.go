package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type PostLikeRepository struct {
	*Repository[*model.PostLike]
}

func NewPostLikeRepository(db *bun.DB, logger *zap.Logger) *PostLikeRepository {
	return &PostLikeRepository{
		Repository: New(db, "PostLike", func() *model.PostLike { return new(model.PostLike) }, logger),
	}
}

// CountByPost counts active likes.
func (r *PostLikeRepository) CountByPost(ctx context.Context, postID uuid.UUID) (int, error) {
	return r.Count(ctx, Where("post_id", postID))
}

func (r *PostLikeRepository) HasUserLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	return r.Exists(ctx, Where("post_id", postID), Where("user_id", userID))
}

// GetByPostAndUser returns the active like, or nil.
func (r *PostLikeRepository) GetByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error) {
	like := new(model.PostLike)
	q := r.DB().NewSelect().Model(like)
	q = Where("user_id", userID)(Where("post_id", postID)(NotDeleted()(q)))

	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query like: %w", err)
	}
	return like, nil
}
