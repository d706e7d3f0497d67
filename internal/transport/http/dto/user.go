package dto

import (
	"strings"
	"time"

	"github.com/cinevault/movies-service/internal/domain"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,username_format"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=regular admin"`
}

func (r *CreateUserRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	return checkStruct(r)
}

// UserView never carries the password hash; it is stripped at the mapping
// boundary, not left to callers.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserViews(list []domain.User) []UserView {
	out := make([]UserView, 0, len(list))
	for _, u := range list {
		out = append(out, NewUserView(u))
	}
	return out
}
