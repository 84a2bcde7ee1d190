// Package pdf renders a saved shopping list order as a printable PDF,
// sectioned the same way the email and web views are.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mirepoix/v1/internal/domain/list"
	"github.com/mirepoix/v1/internal/ports/outbound"
)

// Renderer implements the PDF renderer interface using fpdf
type Renderer struct{}

// NewRenderer creates a PDF renderer
func NewRenderer() outbound.PDFRenderer {
	return Renderer{}
}

// Render produces the shopping list PDF for an order
func (Renderer) Render(order *list.List) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Shopping List", true)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "Shopping List")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Prepared for %s", order.CustomerName))
	doc.Ln(6)
	if order.AppointmentDate != "" {
		doc.Cell(0, 6, fmt.Sprintf("Pickup: %s %s", order.AppointmentDate, order.AppointmentTime))
		doc.Ln(6)
	}
	doc.Ln(4)

	for _, section := range order.Sections() {
		doc.SetFont("Helvetica", "B", 13)
		doc.SetFillColor(235, 235, 235)
		doc.CellFormat(0, 8, section, "", 1, "L", true, 0, "")
		doc.Ln(1)

		doc.SetFont("Helvetica", "", 11)
		for _, item := range order.ItemsIn(section) {
			line := item.Name
			if item.Quantity != "" {
				line = fmt.Sprintf("%s %s %s", item.Quantity, item.Unit, item.Name)
			}
			doc.CellFormat(6, 6, "", "1", 0, "", false, 0, "") // checkbox
			doc.CellFormat(0, 6, "  "+line, "", 1, "L", false, 0, "")
			doc.Ln(1)
		}
		doc.Ln(3)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
