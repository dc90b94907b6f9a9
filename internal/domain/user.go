package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleVolunteer = "volunteer"
	RoleOrgAdmin  = "org_admin"
	RoleAdmin     = "admin"
)

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	Phone            *string   `json:"phone,omitempty"`
	CourseDepartment *string   `json:"course_department,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (u *User) IsVolunteer() bool { return u.Role == RoleVolunteer }
func (u *User) IsOrgAdmin() bool  { return u.Role == RoleOrgAdmin }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) error
	Login(ctx context.Context, username, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
