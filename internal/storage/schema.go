package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		(*model.Admin)(nil),
		(*model.User)(nil),
		(*model.Code)(nil),
		(*model.PostCategory)(nil),
		(*model.Interest)(nil),
		(*model.Post)(nil),
		(*model.PostInterest)(nil),
		(*model.UserInterest)(nil),
		(*model.Comment)(nil),
		(*model.PostLike)(nil),
	}
}

type index struct {
	model   any
	name    string
	columns []string
}

var indexes = []index{
	{(*model.Post)(nil), "idx_posts_category_id", []string{"category_id"}},
	{(*model.Post)(nil), "idx_posts_admin_id", []string{"admin_id"}},
	{(*model.Post)(nil), "idx_posts_created_at", []string{"created_at"}},
	{(*model.Comment)(nil), "idx_comments_post_id", []string{"post_id"}},
	{(*model.PostLike)(nil), "idx_post_likes_post_user", []string{"post_id", "user_id"}},
	{(*model.Admin)(nil), "idx_admins_email", []string{"email"}},
	{(*model.User)(nil), "idx_users_email", []string{"email"}},
	{(*model.Code)(nil), "idx_codes_user_value", []string{"user_id", "value"}},
}

// CreateSchema creates missing tables and indexes.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, m := range Models() {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", m, err)
		}
	}

	for _, idx := range indexes {
		if _, err := db.NewCreateIndex().
			Model(idx.model).
			Index(idx.name).
			Column(idx.columns...).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
