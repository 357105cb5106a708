package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type InterestRepository struct {
	*Repository[*model.Interest]
	postInterests *Repository[*model.PostInterest]
	userInterests *Repository[*model.UserInterest]
}

func NewInterestRepository(db *bun.DB, logger *zap.Logger) *InterestRepository {
	return &InterestRepository{
		Repository:    New(db, "Interest", func() *model.Interest { return new(model.Interest) }, logger),
		postInterests: New(db, "PostInterest", func() *model.PostInterest { return new(model.PostInterest) }, logger),
		userInterests: New(db, "UserInterest", func() *model.UserInterest { return new(model.UserInterest) }, logger),
	}
}

func (r *InterestRepository) GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Interest], error) {
	return r.Paginate(ctx, page, size)
}

func (r *InterestRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return r.Exists(ctx, WhereFold("name", name))
}

// AttachToPost links an interest to a post once; repeated calls are no-ops.
func (r *InterestRepository) AttachToPost(ctx context.Context, postID, interestID uuid.UUID) error {
	linked, err := r.postInterests.Exists(ctx, Where("post_id", postID), Where("interest_id", interestID))
	if err != nil {
		return err
	}
	if linked {
		return nil
	}
	_, err = r.postInterests.Create(ctx, &model.PostInterest{PostID: postID, InterestID: interestID})
	return err
}

// AttachToUser links an interest to a user once.
func (r *InterestRepository) AttachToUser(ctx context.Context, userID, interestID uuid.UUID) error {
	linked, err := r.userInterests.Exists(ctx, Where("user_id", userID), Where("interest_id", interestID))
	if err != nil {
		return err
	}
	if linked {
		return nil
	}
	_, err = r.userInterests.Create(ctx, &model.UserInterest{UserID: userID, InterestID: interestID})
	return err
}

// GetByPost returns the live interests tagged on a post, by name.
func (r *InterestRepository) GetByPost(ctx context.Context, postID uuid.UUID) ([]*model.Interest, error) {
	var interests []*model.Interest

	err := r.DB().NewSelect().
		Model(&interests).
		Join("JOIN post_interests AS pi ON pi.interest_id = i.id").
		Where("pi.post_id = ?", postID).
		Where("pi.deleted = ?", false).
		Where("i.deleted = ?", false).
		Order("i.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query interests by post: %w", err)
	}
	return interests, nil
}
