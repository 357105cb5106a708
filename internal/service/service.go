// Package service holds the per-entity business operations. Each operation
// validates its input, orchestrates repository calls, maps entities to DTOs
// and returns a result.Result. Expected failures travel inside the result;
// the error return carries only fatal conditions such as an unreachable store.
//
// Paged listings read through the cache-aside helper in package cache. Writes
// never evict cached pages, so a listing can lag behind a write by up to one
// cache TTL.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

const (
	codeBadRequest = "400"
	codeNotFound   = "404"
	codeConflict   = "409"
	codeInternal   = "500"
	codeUpstream   = "502"
)

const invalidPaginationMessage = "Invalid pagination parameters. PageNumber and PageSize must be greater than zero."

// ValidatePagination rejects non-positive page numbers and sizes, and pairs
// whose offset (page-1)*size does not fit in an int.
func ValidatePagination(page, size int) *result.Error {
	if page <= 0 || size <= 0 || page-1 > math.MaxInt/size {
		return result.Validation(codeBadRequest, invalidPaginationMessage)
	}
	return nil
}

// FetchByID loads one live entity; a nil entity means absent.
type FetchByID[E any] func(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (*E, error)

// LookupByID fetches a referenced entity and turns absence into a NotFound
// failure naming the entity.
func LookupByID[E any](ctx context.Context, id uuid.UUID, entity string, fetch FetchByID[E], logger *zap.Logger) (result.Result[*E], error) {
	found, err := fetch(ctx, id)
	if err != nil {
		return fatal[*E](ctx, err)
	}
	if found == nil {
		logger.Warn("Entity not found", zap.String("entity", entity), zap.String("id", id.String()))
		return result.Fail[*E](result.NotFound(codeNotFound, fmt.Sprintf("%s with ID %s was not found.", entity, id))), nil
	}
	return result.Success(found), nil
}

// fatal converts cancellation into a Canceled failure and passes any other
// error through.
func fatal[T any](ctx context.Context, err error) (result.Result[T], error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return result.Fail[T](result.Canceled("The operation was canceled.")), nil
	}
	return result.Fail[T](result.Failure(codeInternal, "An unexpected error occurred.")), err
}

// invalid builds a 400 failure.
func invalid[T any](message string) (result.Result[T], error) {
	return result.Fail[T](result.Validation(codeBadRequest, message)), nil
}

func conflict[T any](message string) (result.Result[T], error) {
	return result.Fail[T](result.Conflict(codeConflict, message)), nil
}

func validationMessage(errs ...error) string {
	var ves model.ValidationErrors
	for _, err := range errs {
		var ve model.ValidationError
		if errors.As(err, &ve) {
			ves = append(ves, ve)
		}
	}
	if !ves.HasErrors() {
		return ""
	}
	return ves.Error()
}

// pagedRead serves a paged listing through the cache. An empty page is a
// NotFound failure, including when it is served from the cache.
func pagedRead[D any](ctx context.Context, aside *cache.Aside, logger *zap.Logger, key, emptyMessage string, fetch cache.FetchFn[model.PagedResult[D]]) (result.Result[model.PagedResult[D]], error) {
	page, err := cache.GetOrFetch(ctx, aside, key, fetch)
	if err != nil {
		return fatal[model.PagedResult[D]](ctx, err)
	}

	if page.IsEmpty() {
		logger.Warn(emptyMessage, zap.String("key", key))
		return result.Fail[model.PagedResult[D]](result.NotFound(codeNotFound, emptyMessage)), nil
	}

	logger.Info("Page served", zap.String("key", key), zap.Int("items", len(page.Items)), zap.Int("total", page.TotalItems))
	return result.Success(page), nil
}

// mapPage converts a page of entities into a page of DTOs.
func mapPage[E any, D any](page model.PagedResult[E], toDto func(E) D) model.PagedResult[D] {
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toDto(item))
	}
	return model.NewPagedResult(items, page.TotalItems, page.Page, page.Size)
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
