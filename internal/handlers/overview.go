package handlers

import (
	"net/http"

	"github.com/jung-kurt/gofpdf"
)

// Palette and layout constants for the generated one-pager.
var (
	cNavy   = [3]int{11, 17, 32}
	cAccent = [3]int{76, 103, 191}
	cInk    = [3]int{28, 28, 31}
	cInk60  = [3]int{96, 100, 110}
)

func setFill(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetFillColor(c[0], c[1], c[2]) }
func setText(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }

// OverviewPDFHandler serves GET /automation/overview.pdf: a generated
// one-page summary of the automation services, linked from the automation
// page.
func OverviewPDFHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	const (
		marginL  = 18.0
		marginR  = 18.0
		pageW    = 210.0
		contentW = pageW - marginL - marginR
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginL, 16, marginR)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	// Header band
	setFill(pdf, cNavy)
	pdf.Rect(0, 0, pageW, 34, "F")
	pdf.SetY(10)
	pdf.SetFont("Helvetica", "B", 17)
	setText(pdf, [3]int{255, 255, 255})
	pdf.CellFormat(contentW, 8, "Stonebranch Capital LLC", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	setText(pdf, [3]int{200, 208, 228})
	pdf.CellFormat(contentW, 6, "Business assistance & automation for local service businesses", "", 1, "L", false, 0, "")

	pdf.SetY(44)
	pdf.SetFont("Helvetica", "B", 13)
	setText(pdf, cInk)
	pdf.CellFormat(contentW, 7, "What we automate", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	sections := []struct {
		title string
		body  string
	}{
		{"24/7 lead capture & response",
			"Every inquiry gets a fast, professional reply - nights and weekends included - so leads stop going cold before you see them."},
		{"Bookings that don't fall through the cracks",
			"Scheduling flows with confirmations and reminders that keep the calendar honest and cut no-shows."},
		{"Follow-up after the job is done",
			"Review requests, seasonal check-ins, and win-back messages that run themselves and keep customers coming back."},
		{"Internal handoffs",
			"Task routing so nothing depends on one person remembering everything."},
	}

	for _, s := range sections {
		setFill(pdf, cAccent)
		y := pdf.GetY()
		pdf.Rect(marginL, y+1.2, 1.6, 4.5, "F")
		pdf.SetX(marginL + 5)
		pdf.SetFont("Helvetica", "B", 11)
		setText(pdf, cInk)
		pdf.CellFormat(contentW-5, 7, s.title, "", 1, "L", false, 0, "")
		pdf.SetX(marginL + 5)
		pdf.SetFont("Helvetica", "", 9.5)
		setText(pdf, cInk60)
		pdf.MultiCell(contentW-5, 5, s.body, "", "L", false)
		pdf.Ln(3)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	setText(pdf, cInk)
	pdf.CellFormat(contentW, 7, "How it works", "", 1, "L", false, 0, "")
	pdf.Ln(1)
	steps := []string{
		"1. Tell us what's eating your time and what tools you run today.",
		"2. We map out one or two automations worth doing first.",
		"3. We build it around the tools you already use - no platforms to learn.",
		"4. You keep oversight; the system keeps the follow-up honest.",
	}
	pdf.SetFont("Helvetica", "", 9.5)
	setText(pdf, cInk60)
	for _, step := range steps {
		pdf.MultiCell(contentW, 5.5, step, "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	setText(pdf, cAccent)
	pdf.CellFormat(contentW, 6, "stonebranchcapital.com/contact  -  contact@stonebranchcapital.com", "", 1, "L", false, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="stonebranch-automation-overview.pdf"`)
	if err := pdf.Output(w); err != nil {
		InternalErrorHandler(w, r)
	}
}
