package model

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Post is a blog entry written by an admin.
type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`
	SoftDeletableEntity

	Title      string     `bun:"title,notnull" json:"title"`
	Content    string     `bun:"content,notnull" json:"content"`
	AdminID    *uuid.UUID `bun:"admin_id,type:uuid" json:"admin_id,omitempty"`
	CategoryID *uuid.UUID `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	// LikesCount mirrors the number of active PostLike rows.
	LikesCount int `bun:"likes_count,notnull,default:0" json:"likes_count"`

	Admin    *Admin        `bun:"rel:belongs-to,join:admin_id=id" json:"admin,omitempty"`
	Category *PostCategory `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// PostCategory groups posts; its name is unique.
type PostCategory struct {
	bun.BaseModel `bun:"table:post_categories,alias:pc"`
	SoftDeletableEntity

	Name string `bun:"name,notnull" json:"name"`
}

// Interest is a tag that links users and posts.
type Interest struct {
	bun.BaseModel `bun:"table:interests,alias:i"`
	SoftDeletableEntity

	Name string `bun:"name,notnull" json:"name"`
}

// PostInterest joins a post to an interest.
type PostInterest struct {
	bun.BaseModel `bun:"table:post_interests,alias:pi"`
	SoftDeletableEntity

	PostID     uuid.UUID `bun:"post_id,notnull,type:uuid" json:"post_id"`
	InterestID uuid.UUID `bun:"interest_id,notnull,type:uuid" json:"interest_id"`

	Interest *Interest `bun:"rel:belongs-to,join:interest_id=id" json:"interest,omitempty"`
}

// UserInterest joins a user to an interest.
type UserInterest struct {
	bun.BaseModel `bun:"table:user_interests,alias:ui"`
	SoftDeletableEntity

	UserID     uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	InterestID uuid.UUID `bun:"interest_id,notnull,type:uuid" json:"interest_id"`
}
