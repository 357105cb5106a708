package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
)

type CategoryService struct {
	categories CategoryStore
	aside      *cache.Aside
	keys       cache.KeySerializer
	logger     *zap.Logger
}

func NewCategoryService(categories CategoryStore, aside *cache.Aside, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categories: categories,
		aside:      aside,
		keys:       cache.NewNamespacedKeySerializer("categories"),
		logger:     nopIfNil(logger).Named("category_service"),
	}
}

func validateCategoryName(name string) string {
	if err := model.ValidateRequired("category_name", name); err != nil {
		return "CategoryName is empty."
	}
	return validationMessage(model.ValidateLength("category_name", mapper.NormalizeName(name), 1, model.MaxCategoryNameLength))
}

func (s *CategoryService) Create(ctx context.Context, in dto.CreateCategoryDto) (result.Result[dto.CategoryDto], error) {
	if msg := validateCategoryName(in.CategoryName); msg != "" {
		s.logger.Warn("Invalid category", zap.String("reason", msg))
		return invalid[dto.CategoryDto](msg)
	}

	entity := mapper.CategoryFromCreate(in)

	exists, err := s.categories.NameExists(ctx, entity.Name)
	if err != nil {
		return fatal[dto.CategoryDto](ctx, err)
	}
	if exists {
		s.logger.Warn("Category with name already exists", zap.String("name", entity.Name))
		return conflict[dto.CategoryDto]("Category with name already exists.")
	}

	created, err := s.categories.Create(ctx, entity)
	if err != nil {
		return fatal[dto.CategoryDto](ctx, err)
	}

	s.logger.Info("Category created", zap.String("id", created.ID.String()))
	return result.Success(mapper.CategoryToDto(created)), nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateCategoryDto) (result.Result[dto.CategoryDto], error) {
	if msg := validateCategoryName(in.CategoryName); msg != "" {
		return invalid[dto.CategoryDto](msg)
	}

	found, err := LookupByID(ctx, id, "Category", s.categories.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.CategoryDto](found.Err()), err
	}
	category := found.MustValue()

	name := mapper.NormalizeName(in.CategoryName)
	if !equalFold(name, category.Name) {
		exists, err := s.categories.NameExists(ctx, name)
		if err != nil {
			return fatal[dto.CategoryDto](ctx, err)
		}
		if exists {
			return conflict[dto.CategoryDto]("Category with name already exists.")
		}
	}

	category.Name = name
	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		return fatal[dto.CategoryDto](ctx, err)
	}

	s.logger.Info("Category updated", zap.String("id", id.String()))
	return result.Success(mapper.CategoryToDto(updated)), nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := LookupByID(ctx, id, "Category", s.categories.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if err := s.categories.SoftDelete(ctx, found.MustValue()); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Info("Category deleted", zap.String("id", id.String()))
	return result.Ok(), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.CategoryDto], error) {
	found, err := LookupByID(ctx, id, "Category", s.categories.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.CategoryDto](found.Err()), err
	}
	return result.Success(mapper.CategoryToDto(found.MustValue())), nil
}

func (s *CategoryService) GetPaged(ctx context.Context, page, size int) (result.Result[model.PagedResult[dto.CategoryDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.CategoryDto]](verr), nil
	}

	key := s.keys.SerializeKey("GetPaged", page, size)
	return pagedRead(ctx, s.aside, s.logger, key, "No categories found.",
		func(ctx context.Context) (model.PagedResult[dto.CategoryDto], error) {
			entities, err := s.categories.GetPaged(ctx, page, size)
			if err != nil {
				return model.PagedResult[dto.CategoryDto]{}, err
			}
			return mapPage(entities, mapper.CategoryToDto), nil
		})
}
