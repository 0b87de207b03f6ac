package domain

import "time"

type Role string

const (
	RoleCreator Role = "creator"
	RoleBrand   Role = "brand"
)

// Valid reports whether the role is one of the two known tags. Role is fixed
// at registration and never changes afterwards.
func (r Role) Valid() bool {
	return r == RoleCreator || r == RoleBrand
}

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	UserType     Role      `json:"user_type"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
