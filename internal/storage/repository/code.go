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

// CodeRepository stores verification codes.
type CodeRepository struct {
	*Repository[*model.Code]
}

func NewCodeRepository(db *bun.DB, logger *zap.Logger) *CodeRepository {
	return &CodeRepository{
		Repository: New(db, "Code", func() *model.Code { return new(model.Code) }, logger),
	}
}

// GetByValue returns the newest live code with value, or nil.
func (r *CodeRepository) GetByValue(ctx context.Context, value string, criteria ...SelectCriteria) (*model.Code, error) {
	code := new(model.Code)
	q := r.DB().NewSelect().Model(code).Where("?TableAlias.value = ?", value)
	q = NotDeleted()(q)
	for _, c := range criteria {
		q = c(q)
	}

	if err := NewestFirst()(q).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query code by value: %w", err)
	}
	return code, nil
}

// IsValid reports whether a matching code is unexpired, unused and not revoked.
func (r *CodeRepository) IsValid(ctx context.Context, value string, criteria ...SelectCriteria) (bool, error) {
	now := r.now()
	all := append([]SelectCriteria{
		Where("value", value),
		Where("used", false),
		Where("revoked", false),
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.expiration > ?", now)
		},
	}, criteria...)
	return r.Exists(ctx, all...)
}

func (r *CodeRepository) IsUsed(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.Exists(ctx, Where("id", id), Where("used", true))
}

// MarkUsed flags the code as redeemed without loading it.
func (r *CodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	_, err := r.DB().NewUpdate().
		Model((*model.Code)(nil)).
		Set("used = ?", true).
		Set("updated_at = ?", r.now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark code as used: %w", err)
	}
	return nil
}

// RevokeByUser revokes every unused code of codeType issued to userID.
func (r *CodeRepository) RevokeByUser(ctx context.Context, userID uuid.UUID, codeType model.CodeType) error {
	_, err := r.DB().NewUpdate().
		Model((*model.Code)(nil)).
		Set("revoked = ?", true).
		Set("updated_at = ?", r.now()).
		Where("user_id = ?", userID).
		Where("type = ?", codeType).
		Where("used = ?", false).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke codes: %w", err)
	}
	return nil
}
