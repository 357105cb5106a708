package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CodeLength is the number of digits in a verification code.
const CodeLength = 6

// CodeType names what a verification code unlocks.
type CodeType string

const (
	CodeTypeConfirmAccount CodeType = "confirm_account"
	CodeTypeResetPassword  CodeType = "reset_password"
)

// Code is a short lived verification code sent to a user.
type Code struct {
	bun.BaseModel `bun:"table:codes,alias:cd"`
	SoftDeletableEntity

	UserID     uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	Value      string    `bun:"value,notnull" json:"-"`
	Expiration time.Time `bun:"expiration,notnull" json:"expiration"`
	Type       CodeType  `bun:"type,notnull" json:"type"`
	Revoked    bool      `bun:"revoked,notnull,default:false" json:"revoked"`
	Used       bool      `bun:"used,notnull,default:false" json:"used"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}

// ValidAt reports whether the code can still be redeemed at now.
func (c *Code) ValidAt(now time.Time) bool {
	return !c.Used && !c.Revoked && now.Before(c.Expiration)
}
