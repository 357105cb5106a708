// Package repository implements data access on top of bun. Repository[T] is
// the generic base shared by every entity; the specialised repositories add
// their filtered and paginated queries on top of it.
//
// Every read composes NotDeleted, so soft deleted rows are invisible by default.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	base "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/model"
)

// SelectCriteria narrows a select query.
type SelectCriteria = base.SelectCriteria

// Clock returns the current time; tests replace it.
type Clock func() time.Time

// Repository provides CRUD for one soft deletable entity type. T is a pointer
// to the entity struct, e.g. *model.Post.
type Repository[T model.Record] struct {
	db        *bun.DB
	crud      base.Repository[T]
	newRecord func() T
	now       Clock
	logger    *zap.Logger
	entity    string
}

// New builds a Repository for T; newRecord returns an empty entity.
func New[T model.Record](db *bun.DB, entity string, newRecord func() T, logger *zap.Logger) *Repository[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	handlers := base.ModelHandlers[T]{
		NewRecord: newRecord,
		GetID: func(record T) uuid.UUID {
			return record.GetID()
		},
		SetID: func(record T, id uuid.UUID) {
			record.SetID(id)
		},
		GetIdentifier: func() string {
			return "id"
		},
	}

	return &Repository[T]{
		db:        db,
		crud:      base.NewRepository[T](db, handlers),
		newRecord: newRecord,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.With(zap.String("entity", entity)),
		entity:    entity,
	}
}

// SetClock overrides the timestamp source.
func (r *Repository[T]) SetClock(clock Clock) {
	r.now = clock
}

// DB exposes the underlying handle to specialised repositories.
func (r *Repository[T]) DB() *bun.DB { return r.db }

// Entity is the human readable entity name used in messages.
func (r *Repository[T]) Entity() string { return r.entity }

// Create inserts record. A caller supplied id is kept; a nil id is replaced
// with a fresh one. CreatedAt is set once.
func (r *Repository[T]) Create(ctx context.Context, record T) (T, error) {
	if record.GetID() == uuid.Nil {
		record.SetID(uuid.New())
	}
	record.Stamp(r.now())

	created, err := r.crud.Create(ctx, record)
	if err != nil {
		return created, fmt.Errorf("failed to create %s: %w", r.entity, err)
	}

	r.logger.Debug("record created", zap.String("id", record.GetID().String()))
	return created, nil
}

// GetByID fetches a live record. Absence is not an error: the zero value
// (a nil pointer) is returned with a nil error.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID, criteria ...SelectCriteria) (T, error) {
	var zero T
	record := r.newRecord()

	q := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id)
	q = NotDeleted()(q)
	for _, c := range criteria {
		q = c(q)
	}

	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, nil
		}
		return zero, fmt.Errorf("failed to query %s by ID: %w", r.entity, err)
	}

	return record, nil
}

// Update overwrites every column of record and refreshes UpdatedAt. Zero
// values are written too, so clearing a flag persists. Last writer wins.
func (r *Repository[T]) Update(ctx context.Context, record T) (T, error) {
	record.Touch(r.now())

	if _, err := r.db.NewUpdate().Model(record).WherePK().Exec(ctx); err != nil {
		return record, fmt.Errorf("failed to update %s: %w", r.entity, err)
	}
	return record, nil
}

// SoftDelete flags record as deleted. The row stays in the table.
func (r *Repository[T]) SoftDelete(ctx context.Context, record T) error {
	record.MarkDeleted(r.now())

	_, err := r.db.NewUpdate().
		Model(record).
		Column("deleted", "deleted_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete %s: %w", r.entity, err)
	}

	r.logger.Debug("record soft deleted", zap.String("id", record.GetID().String()))
	return nil
}

// Exists reports whether a live row matches every criterion.
func (r *Repository[T]) Exists(ctx context.Context, criteria ...SelectCriteria) (bool, error) {
	q := r.db.NewSelect().Model(r.newRecord())
	q = NotDeleted()(q)
	for _, c := range criteria {
		q = c(q)
	}

	exists, err := q.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", r.entity, err)
	}
	return exists, nil
}

// Save updates record when a row with its id exists, deleted or not, and
// creates it otherwise.
func (r *Repository[T]) Save(ctx context.Context, record T) (T, error) {
	if record.GetID() == uuid.Nil {
		return r.Create(ctx, record)
	}

	found, err := r.db.NewSelect().
		Model(r.newRecord()).
		Where("?TableAlias.id = ?", record.GetID()).
		Exists(ctx)
	if err != nil {
		return record, fmt.Errorf("failed to look up %s before save: %w", r.entity, err)
	}

	if found {
		return r.Update(ctx, record)
	}
	return r.Create(ctx, record)
}

// Count returns the number of live rows matching criteria.
func (r *Repository[T]) Count(ctx context.Context, criteria ...SelectCriteria) (int, error) {
	total, err := r.crud.Count(ctx, append([]SelectCriteria{NotDeleted()}, criteria...)...)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.entity, err)
	}
	return total, nil
}

// Paginate is the shared paging algorithm: count the filtered predicate, then
// take size rows after skipping (page-1)*size, newest first. Page is 1-based;
// bounds are checked by the caller.
func (r *Repository[T]) Paginate(ctx context.Context, page, size int, criteria ...SelectCriteria) (model.PagedResult[T], error) {
	all := make([]SelectCriteria, 0, len(criteria)+3)
	all = append(all, NotDeleted())
	all = append(all, criteria...)
	all = append(all, NewestFirst(), Page(page, size))

	records, total, err := r.crud.List(ctx, all...)
	if err != nil {
		return model.PagedResult[T]{}, fmt.Errorf("failed to list %s page %d: %w", r.entity, page, err)
	}

	return model.NewPagedResult(records, total, page, size), nil
}
