package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/cache"
	"github.com/Gabo-RDev/LinkUp/internal/dto"
	"github.com/Gabo-RDev/LinkUp/internal/mapper"
	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/result"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

type PostService struct {
	posts        PostStore
	categories   CategoryStore
	admins       AdminStore
	aside        *cache.Aside
	keys         cache.KeySerializer
	recentWindow time.Duration
	now          func() time.Time
	logger       *zap.Logger
}

// PostOption customises a PostService.
type PostOption func(*PostService)

// WithRecentWindow bounds the recent listing to posts younger than window.
// Zero, the default, lists the whole category.
func WithRecentWindow(window time.Duration) PostOption {
	return func(s *PostService) { s.recentWindow = window }
}

func NewPostService(posts PostStore, categories CategoryStore, admins AdminStore, aside *cache.Aside, logger *zap.Logger, opts ...PostOption) *PostService {
	s := &PostService{
		posts:      posts,
		categories: categories,
		admins:     admins,
		aside:      aside,
		keys:       cache.NewNamespacedKeySerializer("posts"),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     nopIfNil(logger).Named("post_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validatePostText(title, content string) string {
	if model.ValidateRequired("title", title) != nil || model.ValidateRequired("content", content) != nil {
		return "Title or Content is empty."
	}
	return validationMessage(model.ValidateLength("title", title, 1, model.MaxTitleLength))
}

// loadPost fetches a live post with author and category.
func (s *PostService) loadPost(ctx context.Context, id uuid.UUID, _ ...repository.SelectCriteria) (*model.Post, error) {
	return s.posts.GetWithRelations(ctx, id)
}

// Create validates the post, checks that its category and author exist and
// stores it. New posts never start with likes.
func (s *PostService) Create(ctx context.Context, in dto.CreatePostDto) (result.Result[dto.PostDto], error) {
	if msg := validatePostText(in.Title, in.Content); msg != "" {
		s.logger.Warn("Invalid post", zap.String("reason", msg))
		return invalid[dto.PostDto](msg)
	}
	if in.LikesCount > 0 {
		s.logger.Warn("LikesCount must be less than or equal to 0.", zap.Int("likes_count", in.LikesCount))
		return invalid[dto.PostDto]("LikesCount must be less than or equal to 0.")
	}
	if in.CategoryID == nil || in.AuthorPostID == nil {
		return invalid[dto.PostDto]("CategoryId and AuthorPostId are required.")
	}

	category, err := LookupByID(ctx, *in.CategoryID, "PostCategory", s.categories.GetByID, s.logger)
	if err != nil || category.IsFailure() {
		return result.Fail[dto.PostDto](category.Err()), err
	}
	admin, err := LookupByID(ctx, *in.AuthorPostID, "Admin", s.admins.GetByID, s.logger)
	if err != nil || admin.IsFailure() {
		return result.Fail[dto.PostDto](admin.Err()), err
	}

	entity := mapper.PostFromCreate(in)
	created, err := s.posts.Create(ctx, entity)
	if err != nil {
		return fatal[dto.PostDto](ctx, err)
	}
	created.Category = category.MustValue()
	created.Admin = admin.MustValue()

	s.logger.Info("Post created", zap.String("id", created.ID.String()))
	return result.Success(mapper.PostToDto(created)), nil
}

func (s *PostService) Update(ctx context.Context, id uuid.UUID, in dto.UpdatePostDto) (result.Result[dto.PostDto], error) {
	if msg := validatePostText(in.Title, in.Content); msg != "" {
		return invalid[dto.PostDto](msg)
	}

	found, err := LookupByID(ctx, id, "Post", s.loadPost, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.PostDto](found.Err()), err
	}
	post := found.MustValue()

	mapper.ApplyPostUpdate(post, in)
	updated, err := s.posts.Update(ctx, post)
	if err != nil {
		return fatal[dto.PostDto](ctx, err)
	}

	s.logger.Info("Post updated", zap.String("id", id.String()))
	return result.Success(mapper.PostToDto(updated)), nil
}

func (s *PostService) Delete(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := LookupByID(ctx, id, "Post", s.posts.GetByID, s.logger)
	if err != nil || found.IsFailure() {
		return result.FailUnit(found.Err()), err
	}

	if err := s.posts.SoftDelete(ctx, found.MustValue()); err != nil {
		return fatal[result.Unit](ctx, err)
	}

	s.logger.Info("Post deleted", zap.String("id", id.String()))
	return result.Ok(), nil
}

// GetByID reads straight from the store; single posts are never cached.
func (s *PostService) GetByID(ctx context.Context, id uuid.UUID) (result.Result[dto.PostDto], error) {
	found, err := LookupByID(ctx, id, "Post", s.loadPost, s.logger)
	if err != nil || found.IsFailure() {
		return result.Fail[dto.PostDto](found.Err()), err
	}
	return result.Success(mapper.PostToDto(found.MustValue())), nil
}

type postPageFunc func(ctx context.Context) (model.PagedResult[*model.Post], error)

func (s *PostService) pagedPosts(ctx context.Context, key, emptyMessage string, load postPageFunc) (result.Result[model.PagedResult[dto.PostDto]], error) {
	return pagedRead(ctx, s.aside, s.logger, key, emptyMessage,
		func(ctx context.Context) (model.PagedResult[dto.PostDto], error) {
			entities, err := load(ctx)
			if err != nil {
				return model.PagedResult[dto.PostDto]{}, err
			}
			return mapPage(entities, mapper.PostToDto), nil
		})
}

func (s *PostService) GetPaged(ctx context.Context, page, size int) (result.Result[model.PagedResult[dto.PostDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.PostDto]](verr), nil
	}

	key := s.keys.SerializeKey("GetPaged", page, size)
	return s.pagedPosts(ctx, key, "No posts found.", func(ctx context.Context) (model.PagedResult[*model.Post], error) {
		return s.posts.GetPaged(ctx, page, size)
	})
}

func (s *PostService) GetPagedByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (result.Result[model.PagedResult[dto.PostDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.PostDto]](verr), nil
	}

	category, err := LookupByID(ctx, categoryID, "PostCategory", s.categories.GetByID, s.logger)
	if err != nil || category.IsFailure() {
		return result.Fail[model.PagedResult[dto.PostDto]](category.Err()), err
	}

	key := s.keys.SerializeKey("GetPagedByCategory", page, size, categoryID)
	return s.pagedPosts(ctx, key, "No posts found for category with id.", func(ctx context.Context) (model.PagedResult[*model.Post], error) {
		return s.posts.GetByCategory(ctx, categoryID, page, size)
	})
}

func (s *PostService) GetPagedByAdmin(ctx context.Context, adminID uuid.UUID, page, size int) (result.Result[model.PagedResult[dto.PostDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.PostDto]](verr), nil
	}

	admin, err := LookupByID(ctx, adminID, "Admin", s.admins.GetByID, s.logger)
	if err != nil || admin.IsFailure() {
		return result.Fail[model.PagedResult[dto.PostDto]](admin.Err()), err
	}

	key := s.keys.SerializeKey("GetPagedByAdmin", page, size, adminID)
	return s.pagedPosts(ctx, key, "No posts found for admin with id.", func(ctx context.Context) (model.PagedResult[*model.Post], error) {
		return s.posts.GetByAdmin(ctx, adminID, page, size)
	})
}

// GetPagedRecent lists a category's newest posts, bounded by the recent
// window when one is configured.
func (s *PostService) GetPagedRecent(ctx context.Context, categoryID uuid.UUID, page, size int) (result.Result[model.PagedResult[dto.PostDto]], error) {
	if verr := ValidatePagination(page, size); verr != nil {
		return result.Fail[model.PagedResult[dto.PostDto]](verr), nil
	}

	category, err := LookupByID(ctx, categoryID, "PostCategory", s.categories.GetByID, s.logger)
	if err != nil || category.IsFailure() {
		return result.Fail[model.PagedResult[dto.PostDto]](category.Err()), err
	}

	var since time.Time
	if s.recentWindow > 0 {
		since = s.now().Add(-s.recentWindow)
	}

	key := s.keys.SerializeKey("GetPagedRecent", page, size, categoryID)
	return s.pagedPosts(ctx, key, "No posts found for category with id.", func(ctx context.Context) (model.PagedResult[*model.Post], error) {
		return s.posts.GetRecentByCategory(ctx, categoryID, since, page, size)
	})
}
