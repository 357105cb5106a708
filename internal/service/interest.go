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

type InterestService struct {
	interests InterestStore
	posts     PostStore
	users     UserStore
	aside     *cache.Aside
	keys      cache.KeySerializer
	logger    *zap.Logger
}

func NewInterestService(interests InterestStore, posts PostStore, users UserStore, aside *cache.Aside, logger *zap.Logger) *InterestService {
	return &InterestService{
		interests: interests,
		posts:     posts,
		users:     users,
		aside:     aside,
		keys:      cache.NewNamespacedKeySerializer("interests"),
		logger:    nopIfNil(logger).Named("interest_service"),
	}
}

func validateInterestName(name string) string {
	if err := model.ValidateRequired("name", name); err != nil {
		return "Interest name is empty."
	}
	return validationMessage(model.ValidateLength("name", mapper.NormalizeName(name), 1, model.MaxInterestNameLength))
}

func (s *InterestService) Create(ctx context.Context, in dto.CreateInterestDto) (result.Result[dto.InterestDto], error) {
	if msg := validateInterestName(in.Name); msg != "" {
		s.logger.Warn("Invalid interest", zap.String("reason", msg))
		return invalid[dto.InterestDto](msg)
	}

	entity := mapper.InterestFromCreate(in)

	exists, err := s.interests.NameExists(ctx, entity.Name)
	if err != nil {
		return fatal[dto.InterestDto](ctx, err)
	}
	if exists {
		s.logger.Warn("Interest with name already exists", zap.String("name", entity.Name))
		return conflict[dto.InterestDto]("Interest with name already exists.")
	}

	created, err := s.interests.Create(ctx, entity)
	if err != nil {
		return fatal[dto.InterestDto](ctx, err)
	}

	s.logger.Info("Interest created", zap.String("id", created.ID.String()))
	return result.Success(mapper.InterestToDto(created)), nil
}

func (s *InterestService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateInterestDto) (result.Result[dto.InterestDto], error) {
	if msg := validateInterestName(in.Name); msg != "" {
		return invalid[dto.InterestDto](msg)
	}

	found, err := LookupByID(ctx, id, "Interest", s.interests.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.InterestDto](found.Err()), err
	}
	interest := found.MustValue()

	name := mapper.NormalizeName(in.Name)
	if !equalFold(name, interest.Name) {
		exists, err := s.interests.NameExists(ctx, name)
		if err != nil {
			return fatal[dto.InterestDto](ctx, err)
		}
		if exists {
			return conflict[dto.InterestDto]("Interest with name already exists.")
		}
	}

	interest.Name = name
	updated, err := s.interests.Update(ctx, interest)
	if err != nil {
		return fatal[dto.InterestDto](ctx, err)
	}
	return result.Success(mapper.InterestToDto(updated)), nil
}

func (s *InterestService) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := LookupByID(ctx, id, "Interest", s.interests.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if err := s.interests.SoftDelete(ctx, found.MustValue()); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Info("Interest deleted", zap.String("id", id.String()))
	return result.Ok(), nil
}

func (s *InterestService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.InterestDto], error) {
	found, err := LookupByID(ctx, id, "Interest", s.interests.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.InterestDto](found.Err()), err
	}
	return result.Success(mapper.InterestToDto(found.MustValue())), nil
}

func (s *InterestService) GetPaged(ctx context.Context, page, size int) (result.Result[model.PagedResult[dto.InterestDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.InterestDto]](verr), nil
	}

	key := s.keys.SerializeKey("GetPaged", page, size)
	return pagedRead(ctx, s.aside, s.logger, key, "No interests found.",
		func(ctx context.Context) (model.PagedResult[dto.InterestDto], error) {
			entities, err := s.interests.GetPaged(ctx, page, size)
			if err != nil {
				return model.PagedResult[dto.InterestDto]{}, err
			}
			return mapPage(entities, mapper.InterestToDto), nil
		})
}

// AttachToPost tags a post with an interest. Both must exist.
func (s *InterestService) AttachToPost(ctx context.Context, postID, interestID uuid.UUID) (result.Result[result.Unit], error) {
	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.FailUnit(post.Err()), err
	}
	interest, err := LookupByID(ctx, interestID, "Interest", s.interests.GetByID, s.logger)
	if err != nil || interest.IsFailure() {
		return result.FailUnit(interest.Err()), err
	}

	if err := s.interests.AttachToPost(ctx, postID, interestID); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	return result.Ok(), nil
}

// AttachToUser records that a user follows an interest.
func (s *InterestService) AttachToUser(ctx context.Context, userID, interestID uuid.UUID) (result.Result[result.Unit], error) {
	user, err := LookupByID(ctx, userID, "User", s.users.GetByID, s.logger)
	if err != nil || user.IsFailure() {
		return result.FailUnit(user.Err()), err
	}
	interest, err := LookupByID(ctx, interestID, "Interest", s.interests.GetByID, s.logger)
	if err != nil || interest.IsFailure() {
		return result.FailUnit(interest.Err()), err
	}

	if err := s.interests.AttachToUser(ctx, userID, interestID); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	return result.Ok(), nil
}

// GetByPost lists the interests tagged on a post. Not cached.
func (s *InterestService) GetByPost(ctx context.Context, postID uuid.UUID) (result.Result[[]dto.InterestDto], error) {
	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[[]dto.InterestDto](post.Err()), err
	}

	interests, err := s.interests.GetByPost(ctx, postID)
	if err != nil {
		return fatal[[]dto.InterestDto](ctx, err)
	}

	out := make([]dto.InterestDto, 0, len(interests))
	for _, i := range interests {
		out = append(out, mapper.InterestToDto(i))
	}
	return result.Success(out), nil
}
