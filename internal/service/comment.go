package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

type CommentService struct {
	comments CommentStore
	posts    PostStore
	users    UserStore
	aside    *cache.Aside
	keys     cache.KeySerializer
	logger   *zap.Logger
}

func NewCommentService(comments CommentStore, posts PostStore, users UserStore, aside *cache.Aside, logger *zap.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		users:    users,
		aside:    aside,
		keys:     cache.NewNamespacedKeySerializer("comments"),
		logger:   nopIfNil(logger).Named("comment_service"),
	}
}

func validateCommentText(text string) string {
	if model.ValidateRequired("description", text) != nil {
		return "Comment description is empty."
	}
	return validationMessage(model.ValidateLength("description", strings.TrimSpace(text), 1, model.MaxCommentLength))
}

func (s *CommentService) loadComment(ctx context.Context, id uuid.UUID, _ ...repository.SelectCriteria) (*model.Comment, error) {
	return s.comments.GetByID(ctx, id, repository.WithRelations("User"))
}

// Create adds a comment, or a reply when ParentCommentID is set. A reply must
// target a comment on the same post.
func (s *CommentService) Create(ctx context.Context, in dto.CreateCommentDto) (result.Result[dto.CommentDto], error) {
	if msg := validateCommentText(in.Description); msg != "" {
		return invalid[dto.CommentDto](msg)
	}

	post, err := LookupByID(ctx, in.PostID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[dto.CommentDto](post.Err()), err
	}
	user, err := LookupByID(ctx, in.UserID, "User", s.users.GetByID, s.logger)
	if err != nil || user.IsFailure() {
		return result.Fail[dto.CommentDto](user.Err()), err
	}

	if in.ParentCommentID != nil {
		parent, err := LookupByID(ctx, *in.ParentCommentID, "Comment", s.comments.GetByID, s.logger)
		if err != nil || parent.IsFailure() {
			return result.Fail[dto.CommentDto](parent.Err()), err
		}
		if parent.MustValue().PostID != in.PostID {
			return invalid[dto.CommentDto]("Parent comment belongs to another post.")
		}
	}

	created, err := s.comments.Create(ctx, mapper.CommentFromCreate(in))
	if err != nil {
		return fatal[dto.CommentDto](ctx, err)
	}
	created.User = user.MustValue()

	s.logger.Info("Comment created", zap.String("id", created.ID.String()), zap.String("post_id", in.PostID.String()))
	return result.Success(mapper.CommentToDto(created)), nil
}

// Update replaces the text and marks the comment as edited.
func (s *CommentService) Update(ctx context.Context, id uuid.UUID, in dto.UpdateCommentDto) (result.Result[dto.CommentDto], error) {
	if msg := validateCommentText(in.Description); msg != "" {
		return invalid[dto.CommentDto](msg)
	}

	found, err := LookupByID(ctx, id, "Comment", s.loadComment, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.CommentDto](found.Err()), err
	}
	comment := found.MustValue()

	comment.Description = strings.TrimSpace(in.Description)
	comment.Edited = true
	updated, err := s.comments.Update(ctx, comment)
	if err != nil {
		return fatal[dto.CommentDto](ctx, err)
	}
	return result.Success(mapper.CommentToDto(updated)), nil
}

// Pin sets or clears the pinned flag.
func (s *CommentService) Pin(ctx context.Context, id uuid.UUID, pinned bool) (result.Result[dto.CommentDto], error) {
	found, err := LookupByID(ctx, id, "Comment", s.loadComment, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.CommentDto](found.Err()), err
	}
	comment := found.MustValue()

	comment.IsPinned = pinned
	updated, err := s.comments.Update(ctx, comment)
	if err != nil {
		return fatal[dto.CommentDto](ctx, err)
	}
	return result.Success(mapper.CommentToDto(updated)), nil
}

func (s *CommentService) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := LookupByID(ctx, id, "Comment", s.comments.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if err := s.comments.SoftDelete(ctx, found.MustValue()); err != nil {
		return fatal[result.Unit](ctx, err)
	}
	return result.Ok(), nil
}

func (s *CommentService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.CommentDto], error) {
	found, err := LookupByID(ctx, id, "Comment", s.loadComment, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.CommentDto](found.Err()), err
	}
	return result.Success(mapper.CommentToDto(found.MustValue())), nil
}

func (s *CommentService) GetPaged(ctx context.Context, page, size int) (result.Result[model.PagedResult[dto.CommentDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.CommentDto]](verr), nil
	}

	key := s.keys.SerializeKey("GetPaged", page, size)
	return pagedRead(ctx, s.aside, s.logger, key, "No comments found.",
		func(ctx context.Context) (model.PagedResult[dto.CommentDto], error) {
			entities, err := s.comments.GetPaged(ctx, page, size)
			if err != nil {
				return model.PagedResult[dto.CommentDto]{}, err
			}
			return mapPage(entities, mapper.CommentToDto), nil
		})
}

// GetPagedByPost lists a post's comments, newest first.
func (s *CommentService) GetPagedByPost(ctx context.Context, postID uuid.UUID, page, size int) (result.Result[model.PagedResult[dto.CommentDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.CommentDto]](verr), nil
	}

	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[model.PagedResult[dto.CommentDto]](post.Err()), err
	}

	key := s.keys.SerializeKey("GetPagedByPost", page, size, postID)
	return pagedRead(ctx, s.aside, s.logger, key, "No comments found for post with id.",
		func(ctx context.Context) (model.PagedResult[dto.CommentDto], error) {
			entities, err := s.comments.GetPagedByPost(ctx, postID, page, size)
			if err != nil {
				return model.PagedResult[dto.CommentDto]{}, err
			}
			return mapPage(entities, mapper.CommentToDto), nil
		})
}

// CountByPost returns the number of live comments on a post, replies included.
func (s *CommentService) CountByPost(ctx context.Context, postID uuid.UUID) (result.Result[int], error) {
	post, err := LookupByID(ctx, postID, "Post", s.posts.GetByID, s.logger)
	if err != nil || post.IsFailure() {
		return result.Fail[int](post.Err()), err
	}

	count, err := s.comments.CountByPost(ctx, postID)
	if err != nil {
		return fatal[int](ctx, err)
	}
	return result.Success(count), nil
}
