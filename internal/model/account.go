package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Admin authors posts and moderates users.
type Admin struct {
	bun.BaseModel `bun:"table:admins,alias:a"`
	SoftDeletableEntity

	FirstName        string      `bun:"first_name,notnull" json:"first_name"`
	LastName         string      `bun:"last_name,notnull" json:"last_name"`
	UserName         string      `bun:"user_name,notnull" json:"user_name"`
	Email            string      `bun:"email,notnull" json:"email"`
	Password         string      `bun:"password,notnull" json:"-"`
	ProfilePhoto     string      `bun:"profile_photo" json:"profile_photo"`
	LastLoginAt      *time.Time  `bun:"last_login_at,nullzero" json:"last_login_at,omitempty"`
	Status           AdminStatus `bun:"status,notnull" json:"status"`
	ConfirmedAccount bool        `bun:"confirmed_account,notnull,default:false" json:"confirmed_account"`
}

// FullName joins first and last name with a single space.
func (a *Admin) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// User is a reader who comments on and likes posts.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	SoftDeletableEntity

	FirstName        string     `bun:"first_name,notnull" json:"first_name"`
	LastName         string     `bun:"last_name,notnull" json:"last_name"`
	UserName         string     `bun:"user_name,notnull" json:"user_name"`
	Email            string     `bun:"email,notnull" json:"email"`
	Password         string     `bun:"password,notnull" json:"-"`
	ProfilePhoto     string     `bun:"profile_photo" json:"profile_photo"`
	CoverPhoto       string     `bun:"cover_photo" json:"cover_photo"`
	Biography        string     `bun:"biography" json:"biography"`
	Birthday         *time.Time `bun:"birthday,nullzero" json:"birthday,omitempty"`
	LastLoginAt      *time.Time `bun:"last_login_at,nullzero" json:"last_login_at,omitempty"`
	ConfirmedAccount bool       `bun:"confirmed_account,notnull,default:false" json:"confirmed_account"`
	Status           UserStatus `bun:"status,notnull" json:"status"`
}
