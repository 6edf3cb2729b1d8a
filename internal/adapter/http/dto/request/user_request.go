package request

import "smartsales365/internal/domain/entities"

// UserRequest is the create/update payload for back-office accounts.
type UserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	Role      string `json:"rol"`
}

func (r UserRequest) ToEntity(id string) entities.User {
	return entities.User{
		ID:        id,
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
		Role:      r.Role,
	}
}
