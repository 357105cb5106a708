package model

// UserStatus is the account state of a reader.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

// IsValid checks the status against the known values.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned:
		return true
	}
	return false
}

// AdminStatus is the account state of an author.
type AdminStatus string

const (
	AdminStatusActive   AdminStatus = "active"
	AdminStatusInactive AdminStatus = "inactive"
	AdminStatusBanned   AdminStatus = "banned"
)

func (s AdminStatus) IsValid() bool {
	switch s {
	case AdminStatusActive, AdminStatusInactive, AdminStatusBanned:
		return true
	}
	return false
}
