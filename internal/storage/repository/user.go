package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type UserRepository struct {
	*Repository[*model.User]
}

func NewUserRepository(db *bun.DB, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		Repository: New(db, "User", func() *model.User { return new(model.User) }, logger),
	}
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, WhereFold("email", email))
}

func (r *UserRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	return r.Exists(ctx, WhereFold("user_name", userName))
}

// GetLikersByPost pages the users with an active like on postID, most recent like first.
func (r *UserRepository) GetLikersByPost(ctx context.Context, postID uuid.UUID, page, size int) (model.PagedResult[*model.User], error) {
	var users []*model.User

	total, err := r.DB().NewSelect().
		Model(&users).
		Join("JOIN post_likes AS pl ON pl.user_id = u.id").
		Where("pl.post_id = ?", postID).
		Where("pl.deleted = ?", false).
		Where("u.deleted = ?", false).
		OrderExpr("pl.created_at DESC").
		Limit(size).
		Offset(model.Offset(page, size)).
		ScanAndCount(ctx)
	if err != nil {
		return model.PagedResult[*model.User]{}, fmt.Errorf("failed to query likers of post: %w", err)
	}

	return model.NewPagedResult(users, total, page, size), nil
}
