package infra

// pdf.go — estado de cuenta generation using go-pdf/fpdf.
// Produces an A4 statement with:
//   - Header with project, lot and client
//   - Sale summary (moneda, cuotas, monto total)
//   - Payment ledger table (fecha, monto)
//   - Totals: monto abonado and saldo pendiente
//
// The output file is saved to storagePath/estado_cuenta_{ventaId}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"inmobiliaria/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// PDFGenerator writes account statements into a configured directory.
type PDFGenerator struct {
	storagePath string
}

func NewPDFGenerator(storagePath string) *PDFGenerator {
	return &PDFGenerator{storagePath: storagePath}
}

// GenerarEstadoCuenta renders the statement for a preloaded sale and returns
// the absolute path to the generated file.
func (g *PDFGenerator) GenerarEstadoCuenta(venta *model.Venta, montoAbonado, saldoPendiente decimal.Decimal) (string, error) {
	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("estado_cuenta_%s.pdf", venta.ID)
	filePath := filepath.Join(g.storagePath, fileName)

	simbolo := ""
	if venta.Moneda != nil {
		simbolo = venta.Moneda.Simbolo + " "
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Estado de Cuenta", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 10)
	if venta.Cliente != nil {
		pdf.CellFormat(contentW, 6, "Cliente: "+venta.Cliente.NombreCompleto(), "", 1, "L", false, 0, "")
	}
	if venta.Proyecto != nil {
		pdf.CellFormat(contentW, 6, "Proyecto: "+venta.Proyecto.Nombre, "", 1, "L", false, 0, "")
	}
	if venta.Lote != nil {
		pdf.CellFormat(contentW, 6, "Lote: "+venta.Lote.Nombre, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 6, "Estado: "+venta.EstadoNombre(), "", 1, "L", false, 0, "")
	if venta.NroCuotas != nil {
		pdf.CellFormat(contentW, 6, fmt.Sprintf("Cuotas: %d", *venta.NroCuotas), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(contentW, 6, "Modalidad: contado", "", 1, "L", false, 0, "")
	}
	if venta.FechaContrato != nil {
		pdf.CellFormat(contentW, 6, "Fecha de contrato: "+venta.FechaContrato.Format("02/01/2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Ledger table ─────────────────────────────────────────────────────────
	col1 := contentW * 0.5
	col2 := contentW * 0.5

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Fecha de abono", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Monto", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if len(venta.Abonos) == 0 {
		pdf.CellFormat(contentW, 7, "Sin abonos registrados", "", 1, "C", false, 0, "")
	}
	for _, a := range venta.Abonos {
		pdf.CellFormat(col1, 7, a.FechaAbono.Format("02/01/2006 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 7, simbolo+a.MontoAbonado.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1, 8, "Monto total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, simbolo+venta.MontoTotal.StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.CellFormat(col1, 8, "Monto abonado", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, simbolo+montoAbonado.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(col1, 8, "Saldo pendiente", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 8, simbolo+saldoPendiente.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
