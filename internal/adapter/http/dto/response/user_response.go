package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Phone        string    `json:"telefono,omitempty"`
	Address      string    `json:"direccion,omitempty"`
	Role         string    `json:"rol"`
	RegisteredAt time.Time `json:"date_joined"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         u.Role,
		RegisteredAt: u.RegisteredAt,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
