package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Document carries everything needed to lay out a guest invoice.
type Document struct {
	HotelName    string
	HotelAddress string
	HotelPhone   string
	HotelEmail   string
	HotelTaxID   string

	InvoiceNumber string
	IssuedAt      time.Time
	ClientName    string
	RoomNumber    string
	ArrivalDate   time.Time
	DepartureDate time.Time

	Lines    []Line
	Payments []PaymentLine

	TotalHT    float64
	TotalTax   float64
	TourismTax float64
	TotalTTC   float64
	AmountPaid float64
	Balance    float64
}

// Line is a single billed row, tax included in the amount.
type Line struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Amount      float64
}

// PaymentLine is a settled payment shown under the totals.
type PaymentLine struct {
	PaidAt time.Time
	Method string
	Amount float64
}

// InvoiceRenderer writes invoice PDFs into a fixed output directory.
type InvoiceRenderer struct {
	outputDir string
}

// NewInvoiceRenderer creates a renderer. The directory is created on first use.
func NewInvoiceRenderer(outputDir string) *InvoiceRenderer {
	return &InvoiceRenderer{outputDir: outputDir}
}

// Render lays out the invoice and writes it to disk, returning the file path.
func (r *InvoiceRenderer) Render(doc *Document) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, doc.HotelName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(18,
		col.New(12).Add(
			text.New(doc.HotelAddress, props.Text{Size: 9}),
			text.New(fmt.Sprintf("Tel: %s  %s", doc.HotelPhone, doc.HotelEmail), props.Text{Size: 9, Top: 4}),
			text.New("Tax ID: "+doc.HotelTaxID, props.Text{Size: 9, Top: 8}),
		),
	)

	m.AddRow(10,
		text.NewCol(12, "Invoice "+doc.InvoiceNumber, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New("Guest: "+doc.ClientName, props.Text{Size: 10}),
			text.New("Room: "+doc.RoomNumber, props.Text{Size: 10, Top: 5}),
		),
		col.New(6).Add(
			text.New("Issued: "+doc.IssuedAt.Format("2006-01-02"), props.Text{Size: 10}),
			text.New("Arrival: "+doc.ArrivalDate.Format("2006-01-02"), props.Text{Size: 10, Top: 5}),
			text.New("Departure: "+doc.DepartureDate.Format("2006-01-02"), props.Text{Size: 10, Top: 10}),
		),
	)

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, line := range doc.Lines {
		m.AddRow(7,
			text.NewCol(6, line.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", line.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(line.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(line.Amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Subtotal (HT)", doc.TotalHT, false},
		{"VAT", doc.TotalTax, false},
		{"Tourism tax", doc.TourismTax, false},
		{"Total (TTC)", doc.TotalTTC, true},
		{"Paid", doc.AmountPaid, false},
		{"Balance due", doc.Balance, true},
	}
	for _, row := range totals {
		style := fontstyle.Normal
		if row.bold {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(7),
			text.NewCol(3, row.label, props.Text{Size: 9, Style: style}),
			text.NewCol(2, money(row.value), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	if len(doc.Payments) > 0 {
		m.AddRow(9,
			text.NewCol(12, "Payments", props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}),
		)
		for _, p := range doc.Payments {
			m.AddRow(7,
				text.NewCol(4, p.PaidAt.Format("2006-01-02 15:04"), props.Text{Size: 9}),
				text.NewCol(4, p.Method, props.Text{Size: 9}),
				text.NewCol(4, money(p.Amount), props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	rendered, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("generate invoice PDF: %w", err)
	}

	path := filepath.Join(r.outputDir, fmt.Sprintf("invoice_%s.pdf", doc.InvoiceNumber))
	if err := rendered.Save(path); err != nil {
		return "", fmt.Errorf("save invoice PDF: %w", err)
	}
	return path, nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f FCFA", v)
}
