// Package dto defines the shapes exchanged across the service boundary.
// Outbound DTOs are what services return and what the cache stores;
// inbound DTOs carry create and update requests.
package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

type PostAdminDto struct {
	AdminID        uuid.UUID `json:"admin_id" msgpack:"admin_id"`
	AuthorName     string    `json:"author_name" msgpack:"author_name"`
	AuthorUsername string    `json:"author_username" msgpack:"author_username"`
	AuthorPhoto    string    `json:"author_photo" msgpack:"author_photo"`
}

type PostCategoryDto struct {
	CategoryID   uuid.UUID `json:"category_id" msgpack:"category_id"`
	CategoryName string    `json:"category_name" msgpack:"category_name"`
}

type PostDto struct {
	PostID     uuid.UUID       `json:"post_id" msgpack:"post_id"`
	Title      string          `json:"title" msgpack:"title"`
	Content    string          `json:"content" msgpack:"content"`
	LikesCount int             `json:"likes_count" msgpack:"likes_count"`
	AuthorPost PostAdminDto    `json:"author_post" msgpack:"author_post"`
	Category   PostCategoryDto `json:"category" msgpack:"category"`
	CreatedAt  time.Time       `json:"created_at" msgpack:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" msgpack:"updated_at"`
}

type CreatePostDto struct {
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	LikesCount   int        `json:"likes_count"`
	AuthorPostID *uuid.UUID `json:"author_post_id"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

type UpdatePostDto struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CategoryDto struct {
	CategoryID   uuid.UUID `json:"category_id" msgpack:"category_id"`
	CategoryName string    `json:"category_name" msgpack:"category_name"`
	CreatedAt    time.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" msgpack:"updated_at"`
}

type CreateCategoryDto struct {
	CategoryName string `json:"category_name"`
}

type UpdateCategoryDto struct {
	CategoryName string `json:"category_name"`
}

type InterestDto struct {
	InterestID uuid.UUID `json:"interest_id" msgpack:"interest_id"`
	Name       string    `json:"name" msgpack:"name"`
	CreatedAt  time.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" msgpack:"updated_at"`
}

type CreateInterestDto struct {
	Name string `json:"name"`
}

type UpdateInterestDto struct {
	Name string `json:"name"`
}

// FileUpload is a media payload attached to a create request.
type FileUpload struct {
	Name    string
	Content io.Reader
}

type AdminDto struct {
	ID           uuid.UUID `json:"id" msgpack:"id"`
	FirstName    string    `json:"first_name" msgpack:"first_name"`
	LastName     string    `json:"last_name" msgpack:"last_name"`
	UserName     string    `json:"user_name" msgpack:"user_name"`
	Email        string    `json:"email" msgpack:"email"`
	ProfilePhoto string    `json:"profile_photo" msgpack:"profile_photo"`
	Status       string    `json:"status" msgpack:"status"`
}

type CreateAdminDto struct {
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	UserName     string      `json:"user_name"`
	Email        string      `json:"email"`
	Password     string      `json:"password"`
	ProfilePhoto *FileUpload `json:"-"`
}

// UpdateAdminDto leaves UserName and Email unchanged when they are empty.
type UpdateAdminDto struct {
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	UserName     string      `json:"user_name,omitempty"`
	Email        string      `json:"email,omitempty"`
	ProfilePhoto *FileUpload `json:"-"`
}

type ChangePasswordDto struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CommentDto struct {
	CommentID       uuid.UUID  `json:"comment_id" msgpack:"comment_id"`
	Description     string     `json:"description" msgpack:"description"`
	PostID          uuid.UUID  `json:"post_id" msgpack:"post_id"`
	UserID          uuid.UUID  `json:"user_id" msgpack:"user_id"`
	UserName        string     `json:"user_name" msgpack:"user_name"`
	IsPinned        bool       `json:"is_pinned" msgpack:"is_pinned"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty" msgpack:"parent_comment_id"`
	Edited          bool       `json:"edited" msgpack:"edited"`
	CreatedAt       time.Time  `json:"created_at" msgpack:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" msgpack:"updated_at"`
}

type CreateCommentDto struct {
	PostID          uuid.UUID  `json:"post_id"`
	UserID          uuid.UUID  `json:"user_id"`
	Description     string     `json:"description"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id"`
}

type UpdateCommentDto struct {
	Description string `json:"description"`
}

type LikeDto struct {
	PostID     uuid.UUID `json:"post_id"`
	UserID     uuid.UUID `json:"user_id"`
	Liked      bool      `json:"liked"`
	LikesCount int       `json:"likes_count"`
}

// UserSummaryDto is the public profile shown in liker lists.
type UserSummaryDto struct {
	UserID       uuid.UUID `json:"user_id" msgpack:"user_id"`
	UserName     string    `json:"user_name" msgpack:"user_name"`
	FullName     string    `json:"full_name" msgpack:"full_name"`
	ProfilePhoto string    `json:"profile_photo" msgpack:"profile_photo"`
}

type RegisterUserDto struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserName  string `json:"user_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type UserDto struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	UserName         string    `json:"user_name"`
	Email            string    `json:"email"`
	Status           string    `json:"status"`
	ConfirmedAccount bool      `json:"confirmed_account"`
}

type ConfirmAccountDto struct {
	Code string `json:"code"`
}
