package repository

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

// NotDeleted hides soft deleted rows of the query's main table.
func NotDeleted() SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.deleted = ?", false)
	}
}

// NewestFirst orders by creation time, most recent first.
func NewestFirst() SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}
}

// Page applies LIMIT size OFFSET (page-1)*size.
func Page(page, size int) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Limit(size).Offset(model.Offset(page, size))
	}
}

// Where matches column against value on the main table.
func Where(column string, value any) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.? = ?", bun.Ident(column), value)
	}
}

// WhereNot excludes rows whose column equals value.
func WhereNot(column string, value any) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.? != ?", bun.Ident(column), value)
	}
}

// WhereFold matches column case-insensitively.
func WhereFold(column, value string) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("LOWER(?TableAlias.?) = LOWER(?)", bun.Ident(column), value)
	}
}

// CreatedSince keeps rows created at or after since; a zero since is ignored.
func CreatedSince(since time.Time) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if since.IsZero() {
			return q
		}
		return q.Where("?TableAlias.created_at >= ?", since)
	}
}

// WithRelations eager loads belongs-to relations by field name.
func WithRelations(names ...string) SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		for _, name := range names {
			q = q.Relation(name)
		}
		return q
	}
}
