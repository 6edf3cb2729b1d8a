package entities

import "time"

// AuditEntry is one bitácora record. Writes are fire-and-forget: a failed
// audit insert never fails the operation that produced it.
//
// Storage model (DynamoDB):
//   - PK: id
type AuditEntry struct {
	ID       string    `json:"id"`
	Username string    `json:"usuario"`
	Action   string    `json:"accion"`
	IP       string    `json:"ip,omitempty"`
	Date     time.Time `json:"fecha_hora"`
	Success  bool      `json:"estado"`
}
