package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

type AdminRepository struct {
	*Repository[*model.Admin]
}

func NewAdminRepository(db *bun.DB, logger *zap.Logger) *AdminRepository {
	return &AdminRepository{
		Repository: New(db, "Admin", func() *model.Admin { return new(model.Admin) }, logger),
	}
}

func (r *AdminRepository) GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Admin], error) {
	return r.Paginate(ctx, page, size)
}

func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, WhereFold("email", email))
}

func (r *AdminRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	return r.Exists(ctx, WhereFold("user_name", userName))
}

// EmailInUse reports whether another admin already owns email.
func (r *AdminRepository) EmailInUse(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	return r.Exists(ctx, WhereFold("email", email), WhereNot("id", exceptID))
}

// UserNameInUse reports whether another admin already owns userName.
func (r *AdminRepository) UserNameInUse(ctx context.Context, userName string, exceptID uuid.UUID) (bool, error) {
	return r.Exists(ctx, WhereFold("user_name", userName), WhereNot("id", exceptID))
}

// UpdatePassword stores an already hashed password.
func (r *AdminRepository) UpdatePassword(ctx context.Context, adminID uuid.UUID, hashed string) error {
	_, err := r.DB().NewUpdate().
		Model((*model.Admin)(nil)).
		Set("password = ?", hashed).
		Set("updated_at = ?", r.now()).
		Where("id = ?", adminID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	return nil
}

// BanUser flips the user's status without loading the entity graph.
func (r *AdminRepository) BanUser(ctx context.Context, userID uuid.UUID) error {
	return r.setUserStatus(ctx, userID, model.UserStatusBanned)
}

func (r *AdminRepository) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	return r.setUserStatus(ctx, userID, model.UserStatusActive)
}

func (r *AdminRepository) setUserStatus(ctx context.Context, userID uuid.UUID, status model.UserStatus) error {
	_, err := r.DB().NewUpdate().
		Model((*model.User)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", r.now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set user status to %s: %w", status, err)
	}
	return nil
}
