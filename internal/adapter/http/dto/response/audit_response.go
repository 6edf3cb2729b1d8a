package response

import (
	"time"

	"smartsales365/internal/domain/entities"
)

type AuditEntryResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"usuario"`
	Action   string    `json:"accion"`
	IP       string    `json:"ip,omitempty"`
	Date     time.Time `json:"fecha_hora"`
	Success  bool      `json:"estado"`
}

func FromAuditEntries(entries []entities.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:       e.ID,
			Username: e.Username,
			Action:   e.Action,
			IP:       e.IP,
			Date:     e.Date,
			Success:  e.Success,
		})
	}
	return out
}
