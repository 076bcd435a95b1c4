package worker

// aviso_worker.go
// Processes jobs from QueueAvisos: when a sale's ledger reaches the total,
// the sales team and the client get an email so the contract signing can be
// scheduled.

import (
	"context"
	"encoding/json"
	"fmt"

	"inmobiliaria/internal/infra"

	"github.com/rs/zerolog/log"
)

// AvisoVentaSaldadaPayload is the job envelope for a fully paid sale.
type AvisoVentaSaldadaPayload struct {
	VentaID        string `json:"venta_id"`
	ClienteNombre  string `json:"cliente_nombre"`
	ClienteCorreo  string `json:"cliente_correo"`
	ProyectoNombre string `json:"proyecto_nombre"`
	LoteNombre     string `json:"lote_nombre"`
	MontoTotal     string `json:"monto_total"`
}

// AvisoWorker sends the venta-saldada notifications via SMTP.
type AvisoWorker struct {
	mailer      *infra.Mailer
	avisosEmail string
}

// NewAvisoWorker creates an AvisoWorker. avisosEmail is the internal inbox
// of the sales team.
func NewAvisoWorker(mailer *infra.Mailer, avisosEmail string) *AvisoWorker {
	return &AvisoWorker{mailer: mailer, avisosEmail: avisosEmail}
}

// Process sends the notification emails for one fully paid sale.
func (w *AvisoWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AvisoVentaSaldadaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("aviso_worker: invalid payload")
		return
	}

	subject := fmt.Sprintf("Venta saldada — %s / %s", payload.ProyectoNombre, payload.LoteNombre)
	body := fmt.Sprintf(
		"La venta %s quedó saldada.\n\nCliente: %s\nProyecto: %s\nLote: %s\nMonto total: %s\n\nYa se puede registrar la fecha de contrato.",
		payload.VentaID, payload.ClienteNombre, payload.ProyectoNombre, payload.LoteNombre, payload.MontoTotal,
	)

	if w.avisosEmail != "" {
		if err := w.mailer.Send(w.avisosEmail, subject, body, ""); err != nil {
			log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("aviso_worker: failed to notify sales team")
		}
	}
	if payload.ClienteCorreo != "" {
		cuerpoCliente := fmt.Sprintf(
			"Estimado(a) %s:\n\nSu compra del lote %s (%s) quedó totalmente pagada. Nos contactaremos para coordinar la firma del contrato.",
			payload.ClienteNombre, payload.LoteNombre, payload.ProyectoNombre,
		)
		if err := w.mailer.Send(payload.ClienteCorreo, "Su lote quedó totalmente pagado", cuerpoCliente, ""); err != nil {
			log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("aviso_worker: failed to notify client")
			return
		}
	}
	log.Info().Str("venta_id", payload.VentaID).Msg("aviso_worker: notifications sent")
}
