package entities

import "time"

// Role names recognized by the back office. Kept as plain strings because the
// original role catalog is data, not code; these are the ones queries rely on.
const (
	RoleAdministrador = "Administrador"
	RoleCliente       = "Cliente"
	RoleTecnico       = "Técnico"
)

// User is the back-office account entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - client reports scan by role
type User struct {
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
