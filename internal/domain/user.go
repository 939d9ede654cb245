package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// User roles
const (
	RoleJobSeeker = "Job Seeker"
	RoleEmployer  = "Employer"
)

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CompanyID *int64    `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterInput is validated in the auth usecase.
type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof='Job Seeker' 'Employer'"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	AssignCompany(ctx context.Context, userID, companyID int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
