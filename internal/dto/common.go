package dto

import "time"

// Wire formats shared by every response.
const (
	FormatoFecha     = "2006-01-02"          // fechaContrato
	FormatoFechaHora = "2006-01-02T15:04:05" // fechaAbono (LocalDateTime, no zone)
)

func fechaISO(t time.Time) string { return t.Format(time.RFC3339) }

func fechaISOPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
