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

// LikeService records likes. After every change the post's LikesCount is
// recomputed from the active likes rather than incremented.
type LikeService struct {
	likes  LikeStore
	posts  PostStore
	users  UserStore
	aside  *cache.Aside
	keys   cache.KeySerializer
	logger *zap.Logger
}

func NewLikeService(likes LikeStore, posts PostStore, users UserStore, aside *cache.Aside, logger *zap.Logger) *LikeService {
	return &LikeService{
		likes:  likes,
		posts:  posts,
		users:  users,
		aside:  aside,
		keys:   cache.NewNamespacedKeySerializer("likes"),
		logger: nopIfNil(logger).Named("like_service"),
	}
}

// participants checks that both the post and the user exist.
func (s *LikeService) participants(ctx context.Context, postID, userID uuid.UUID) (*model.Post, *result.Error, error) {
	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return nil, post.Err(), err
	}
	user, err := LookupByID(ctx, userID, "User", s.users.GetByID, s.logger)
	if err != nil || user.IsFailure() {
		return nil, user.Err(), err
	}
	return post.MustValue(), nil, nil
}

func (s *LikeService) resync(ctx context.Context, post *model.Post) error {
	count, err := s.likes.CountByPost(ctx, post.ID)
	if err != nil {
		return err
	}
	if err := s.posts.SetLikesCount(ctx, post.ID, count); err != nil {
		return err
	}
	post.LikesCount = count
	return nil
}

func (s *LikeService) Like(ctx context.Context, postID, userID uuid.UUID) (result.Result[dto.LikeDto], error) {
	post, ferr, err := s.participants(ctx, postID, userID)
	if err != nil || ferr != nil {
		return result.Fail[dto.LikeDto](ferr), err
	}

	liked, err := s.likes.HasUserLiked(ctx, postID, userID)
	if err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}
	if liked {
		return conflict[dto.LikeDto]("User already liked this post.")
	}

	if _, err := s.likes.Create(ctx, &model.PostLike{PostID: postID, UserID: userID}); err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}
	if err := s.resync(ctx, post); err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}

	s.logger.Info("Post liked", zap.String("post_id", postID.String()), zap.String("user_id", userID.String()))
	return result.Success(mapper.LikeToDto(post, userID, true)), nil
}

func (s *LikeService) Unlike(ctx context.Context, postID, userID uuid.UUID) (result.Result[dto.LikeDto], error) {
	post, ferr, err := s.participants(ctx, postID, userID)
	if err != nil || ferr != nil {
		return result.Fail[dto.LikeDto](ferr), err
	}

	like, err := s.likes.GetByPostAndUser(ctx, postID, userID)
	if err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}
	if like == nil {
		return result.Fail[dto.LikeDto](result.NotFound(codeNotFound, "Like was not found.")), nil
	}

	if err := s.likes.SoftDelete(ctx, like); err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}
	if err := s.resync(ctx, post); err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}

	s.logger.Info("Post unliked", zap.String("post_id", postID.String()), zap.String("user_id", userID.String()))
	return result.Success(mapper.LikeToDto(post, userID, false)), nil
}

// Toggle likes the post when the user has not liked it yet and unlikes it otherwise.
func (s *LikeService) Toggle(ctx context.Context, postID, userID uuid.UUID) (result.Result[dto.LikeDto], error) {
	liked, err := s.likes.HasUserLiked(ctx, postID, userID)
	if err != nil {
		return fatal[dto.LikeDto](ctx, err)
	}
	if liked {
		return s.Unlike(ctx, postID, userID)
	}
	return s.Like(ctx, postID, userID)
}

// Count returns the number of active likes on a post.
func (s *LikeService) Count(ctx context.Context, postID uuid.UUID) (result.Result[int], error) {
	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[int](post.Err()), err
	}

	count, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return fatal[int](ctx, err)
	}
	return result.Success(count), nil
}

func (s *LikeService) HasLiked(ctx context.Context, postID, userID uuid.UUID) (result.Result[bool], error) {
	_, ferr, err := s.participants(ctx, postID, userID)
	if err != nil || ferr != nil {
		return result.Fail[bool](ferr), err
	}

	liked, err := s.likes.HasUserLiked(ctx, postID, userID)
	if err != nil {
		return fatal[bool](ctx, err)
	}
	return result.Success(liked), nil
}

// GetLikers pages the users who like a post, most recent like first.
func (s *LikeService) GetLikers(ctx context.Context, postID uuid.UUID, page, size int) (result.Result[model.PagedResult[dto.UserSummaryDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.UserSummaryDto]](verr), nil
	}

	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[model.PagedResult[dto.UserSummaryDto]](post.Err()), err
	}

	key := s.keys.SerializeKey("GetLikers", page, size, postID)
	return pagedRead(ctx, s.aside, s.logger, key, "No likes found for post with id.",
		func(ctx context.Context) (model.PagedResult[dto.UserSummaryDto], error) {
			users, err := s.users.GetLikersByPost(ctx, postID, page, size)
			if err != nil {
				return model.PagedResult[dto.UserSummaryDto]{}, err
			}
			return mapPage(users, mapper.UserToSummary), nil
		})
}
