package infra

// reportpdf.go generates the one-page batch performance report:
//   - Farm header with batch name and breed
//   - Flock figures (age, placed, dead, mortality, current count)
//   - Production figures (avg weight, feed, biomass, FCR, EPEF)
//   - Financial summary (sales, expenses, profit)
// The output file is saved to storagePath/report_<batchId>.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/merosman91/Boiler-Farm/internal/dto"
)

// GenerateBatchReportPDF renders a batch summary as a printable PDF.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateBatchReportPDF(summary *dto.BatchSummaryResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("report_%s.pdf", summary.BatchID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Batch Performance Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	title := summary.Name
	if summary.Breed != "" {
		title += "  (" + summary.Breed + ")"
	}
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Started %s  |  Day %d  |  %s", summary.StartDate, summary.AgeDays, summary.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW*0.6, 7, label, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW*0.4, 7, value, "B", 1, "R", false, 0, "")
	}
	section := func(name string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(contentW, 8, name, "", 1, "L", false, 0, "")
	}

	// ── Flock ────────────────────────────────────────────────────────────────
	section("Flock")
	row("Birds placed", fmt.Sprintf("%d", summary.InitialCount))
	row("Total dead", fmt.Sprintf("%d", summary.TotalDead))
	row("Current count", fmt.Sprintf("%d", summary.CurrentCount))
	row("Mortality", fmt.Sprintf("%.2f %%", summary.MortalityRate))
	row("Livability", fmt.Sprintf("%.2f %%", summary.Livability))

	// ── Production ───────────────────────────────────────────────────────────
	section("Production")
	row("Average weight", fmt.Sprintf("%.0f g", summary.CurrentWeightG))
	row("Feed consumed", fmt.Sprintf("%.1f kg", summary.TotalFeedKg))
	row("Biomass", fmt.Sprintf("%.1f kg", summary.BiomassKg))
	row("FCR", fmt.Sprintf("%.2f", summary.FCR))
	row("EPEF", fmt.Sprintf("%.0f (%s)", summary.EPEF, summary.EPEFClass))

	// ── Financials ───────────────────────────────────────────────────────────
	section("Financials")
	row("Sales", summary.Finance.Sales.StringFixed(2))
	row("Expenses", summary.Finance.Expenses.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW*0.6, 8, "Profit", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.4, 8, summary.Finance.Profit.StringFixed(2), "T", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write report: %w", err)
	}
	return filePath, nil
}
