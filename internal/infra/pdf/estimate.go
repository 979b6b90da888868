package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/m04kA/TD-WeddingService/internal/domain"
)

const (
	fontFamily = "Helvetica"
	title      = "Tiny Diner Weddings"

	labelWidth  = 120.0
	vendorWidth = 0.0
	amountWidth = 40.0
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Generator рендерит смету заявки в PDF
type Generator struct {
	clock TimeProvider
}

// New создает генератор PDF смет
func New(clock TimeProvider) *Generator {
	return &Generator{clock: clock}
}

// Render формирует PDF со сметой: контакты пары, дата, строки сметы, итог и депозит
func (g *Generator) Render(req *domain.BookingRequest) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "Letter", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr(title+" estimate"), false)
	doc.SetAuthor(tr(title), false)
	doc.AddPage()

	doc.SetFont(fontFamily, "B", 18)
	doc.Cell(0, 10, tr(title))
	doc.Ln(10)

	doc.SetFont(fontFamily, "", 11)
	doc.Cell(0, 6, tr(fmt.Sprintf("Estimate for %s", coupleName(req.Client))))
	doc.Ln(6)
	doc.Cell(0, 6, tr(fmt.Sprintf("Event date: %s", req.EventDate.Format("Monday, January 2, 2006"))))
	doc.Ln(6)
	doc.Cell(0, 6, tr(fmt.Sprintf("Plan: %s", planTitle(req.PlanType))))
	doc.Ln(6)
	if req.Selections != nil {
		doc.Cell(0, 6, tr(fmt.Sprintf("Guests: %d", req.Selections.GuestCount)))
		doc.Ln(6)
	}
	doc.Cell(0, 6, tr(fmt.Sprintf("Contact: %s, %s", req.Client.Email, req.Client.Phone)))
	doc.Ln(10)

	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(labelWidth, 7, tr("Item"), "B", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, 7, tr("Amount"), "B", 1, "R", false, 0, "")

	for _, item := range req.Estimate.LineItems {
		doc.SetFont(fontFamily, "", 10)
		doc.CellFormat(labelWidth, 6, tr(item.Label), "", 0, "L", false, 0, "")
		doc.CellFormat(amountWidth, 6, FormatMoney(item.Amount), "", 1, "R", false, 0, "")

		doc.SetFont(fontFamily, "I", 8)
		doc.CellFormat(vendorWidth, 4, tr(item.Vendor), "", 1, "L", false, 0, "")
		doc.Ln(1)
	}

	doc.Ln(2)
	doc.SetFont(fontFamily, "B", 11)
	doc.CellFormat(labelWidth, 7, tr("Total"), "T", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, 7, FormatMoney(req.Estimate.Total), "T", 1, "R", false, 0, "")
	doc.SetFont(fontFamily, "", 11)
	doc.CellFormat(labelWidth, 7, tr("Deposit due to reserve the date"), "", 0, "L", false, 0, "")
	doc.CellFormat(amountWidth, 7, FormatMoney(req.Estimate.Deposit), "", 1, "R", false, 0, "")

	if req.Notes != nil && *req.Notes != "" {
		doc.Ln(4)
		doc.SetFont(fontFamily, "B", 10)
		doc.Cell(0, 6, tr("Notes"))
		doc.Ln(6)
		doc.SetFont(fontFamily, "", 10)
		doc.MultiCell(0, 5, tr(*req.Notes), "", "L", false)
	}

	doc.Ln(6)
	doc.SetFont(fontFamily, "", 8)
	doc.Cell(0, 5, tr(fmt.Sprintf("Request %s • generated %s", req.ID, g.clock.Now().Format(time.RFC3339))))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatMoney форматирует сумму в долларах с разделителями тысяч: 9264 -> "$9,264"
func FormatMoney(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}

	return sign + "$" + string(out)
}

func coupleName(c domain.Client) string {
	if c.PartnerName != nil && *c.PartnerName != "" {
		return c.PrimaryName + " & " + *c.PartnerName
	}
	return c.PrimaryName
}

func planTitle(p domain.PlanType) string {
	if p == domain.PlanStreamlined {
		return "Tiny Diner Signature (streamlined)"
	}
	return "Custom celebration"
}
