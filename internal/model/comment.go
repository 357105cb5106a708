package model

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Comment is a user's reply on a post, optionally threaded under another comment.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`
	SoftDeletableEntity

	Description     string     `bun:"description,notnull" json:"description"`
	PostID          uuid.UUID  `bun:"post_id,notnull,type:uuid" json:"post_id"`
	UserID          uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"user_id"`
	IsPinned        bool       `bun:"is_pinned,notnull,default:false" json:"is_pinned"`
	ParentCommentID *uuid.UUID `bun:"parent_comment_id,type:uuid" json:"parent_comment_id,omitempty"`
	Edited          bool       `bun:"edited,notnull,default:false" json:"edited"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}

// PostLike records that a user liked a post. One active row per (post, user)
// pair is enforced by queries, not by a store constraint.
type PostLike struct {
	bun.BaseModel `bun:"table:post_likes,alias:pl"`
	SoftDeletableEntity

	PostID uuid.UUID `bun:"post_id,notnull,type:uuid" json:"post_id"`
	UserID uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
}
