package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

const reportTitle = "Restroom Cleanliness Feedback Report"

var columns = []struct {
	header string
	width  float64
}{
	{"Date & Time", 30},
	{"Shift", 18},
	{"Location", 36},
	{"Floor Condition", 26},
	{"Overall Cleanliness", 26},
	{"Bowl Cleanliness", 26},
	{"Trash Bin", 22},
	{"Water Supply", 24},
	{"Lighting", 22},
	{"Comments", 47},
}

// Renderer turns feedback records into the downloadable PDF report.
type Renderer struct {
	location *time.Location
}

func NewRenderer(location *time.Location) *Renderer {
	if location == nil {
		location = time.UTC
	}
	return &Renderer{location: location}
}

// Render produces a landscape A4 report with one table row per record.
// An empty record set still yields a valid document with the header only.
func (r *Renderer) Render(records []domain.Feedback, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, reportTitle, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on: %s", generatedAt.In(r.location).Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	r.writeHeaderRow(pdf)
	pdf.SetFont("Helvetica", "", 8)
	for _, record := range records {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			r.writeHeaderRow(pdf)
			pdf.SetFont("Helvetica", "", 8)
		}
		r.writeRecordRow(pdf, record)
	}

	pdf.SetY(-12)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total records: %d", len(records)), "", 0, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render feedback report: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	for _, column := range columns {
		pdf.CellFormat(column.width, 7, column.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func (r *Renderer) writeRecordRow(pdf *fpdf.Fpdf, record domain.Feedback) {
	comments := record.Comments
	if comments == "" {
		comments = "No comments"
	}
	cells := []string{
		record.CreatedAt.In(r.location).Format("2006-01-02 15:04"),
		record.Shift.String(),
		record.Location.String(),
		record.FloorCondition.String(),
		record.OverallCleanliness.String(),
		record.BowlCleanliness.String(),
		record.TrashBinCondition.String(),
		record.WaterSupply.String(),
		record.Lighting.String(),
		comments,
	}
	for i, column := range columns {
		pdf.CellFormat(column.width, 6, truncate(pdf, cells[i], column.width-2), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// truncate shortens a cell value so it fits the column, appending an
// ellipsis when anything was cut.
func truncate(pdf *fpdf.Fpdf, value string, width float64) string {
	if pdf.GetStringWidth(value) <= width {
		return value
	}
	runes := []rune(value)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return "..."
}
