package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Gabo-RDev/LinkUp/internal/model"
	"github.com/Gabo-RDev/LinkUp/internal/storage/repository"
)

// The store interfaces list what each service needs from its repository.
// The repositories in internal/storage/repository satisfy them.

type crudStore[E any] interface {
	Create(ctx context.Context, record *E) (*E, error)
	GetByID(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (*E, error)
	Update(ctx context.Context, record *E) (*E, error)
	SoftDelete(ctx context.Context, record *E) error
}

type PostStore interface {
	crudStore[model.Post]
	GetWithRelations(ctx context.Context, id uuid.UUID) (*model.Post, error)
	GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Post], error)
	GetByCategory(ctx context.Context, categoryID uuid.UUID, page, size int) (model.PagedResult[*model.Post], error)
	GetByAdmin(ctx context.Context, adminID uuid.UUID, page, size int) (model.PagedResult[*model.Post], error)
	GetRecentByCategory(ctx context.Context, categoryID uuid.UUID, since time.Time, page, size int) (model.PagedResult[*model.Post], error)
	SetLikesCount(ctx context.Context, postID uuid.UUID, count int) error
}

type CategoryStore interface {
	crudStore[model.PostCategory]
	GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.PostCategory], error)
	NameExists(ctx context.Context, name string) (bool, error)
}

type InterestStore interface {
	crudStore[model.Interest]
	GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Interest], error)
	NameExists(ctx context.Context, name string) (bool, error)
	AttachToPost(ctx context.Context, postID, interestID uuid.UUID) error
	AttachToUser(ctx context.Context, userID, interestID uuid.UUID) error
	GetByPost(ctx context.Context, postID uuid.UUID) ([]*model.Interest, error)
}

type AdminStore interface {
	crudStore[model.Admin]
	GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Admin], error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UserNameExists(ctx context.Context, userName string) (bool, error)
	EmailInUse(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	UserNameInUse(ctx context.Context, userName string, exceptID uuid.UUID) (bool, error)
	UpdatePassword(ctx context.Context, adminID uuid.UUID, hashed string) error
	BanUser(ctx context.Context, userID uuid.UUID) error
	UnbanUser(ctx context.Context, userID uuid.UUID) error
}

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID, criteria ...repository.SelectCriteria) (*model.User, error)
	GetLikersByPost(ctx context.Context, postID uuid.UUID, page, size int) (model.PagedResult[*model.User], error)
}

// UserAccountStore is the write side of users used by sign up.
type UserAccountStore interface {
	crudStore[model.User]
	EmailExists(ctx context.Context, email string) (bool, error)
	UserNameExists(ctx context.Context, userName string) (bool, error)
}

type CodeStore interface {
	Create(ctx context.Context, record *model.Code) (*model.Code, error)
	GetByValue(ctx context.Context, value string, criteria ...repository.SelectCriteria) (*model.Code, error)
	IsValid(ctx context.Context, value string, criteria ...repository.SelectCriteria) (bool, error)
	IsUsed(ctx context.Context, id uuid.UUID) (bool, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	RevokeByUser(ctx context.Context, userID uuid.UUID, codeType model.CodeType) error
}

type CommentStore interface {
	crudStore[model.Comment]
	GetPaged(ctx context.Context, page, size int) (model.PagedResult[*model.Comment], error)
	GetPagedByPost(ctx context.Context, postID uuid.UUID, page, size int) (model.PagedResult[*model.Comment], error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
}

type LikeStore interface {
	Create(ctx context.Context, record *model.PostLike) (*model.PostLike, error)
	SoftDelete(ctx context.Context, record *model.PostLike) error
	CountByPost(ctx context.Context, postID uuid.UUID) (int, error)
	HasUserLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	GetByPostAndUser(ctx context.Context, postID, userID uuid.UUID) (*model.PostLike, error)
}
