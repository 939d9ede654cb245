package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"go-jobboard-backend/internal/domain"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// reportTable is the format-neutral materialization of one report
// section. Every export renders from these rows, so PDF, Excel and
// CSV always carry identical content.
type reportTable struct {
	Title  string
	Header []string
	Rows   [][]string
}

type exportHeader struct {
	Title       string
	PeriodLabel string
	Generated   string
}

func detailedReportTable(apps []domain.DetailedApplication) reportTable {
	t := reportTable{
		Title:  "Applications",
		Header: []string{"Applicant Name", "Email", "Phone", "Job Title", "Company", "Category", "Location", "Salary", "Application Date"},
		Rows:   make([][]string, 0, len(apps)),
	}
	for _, a := range apps {
		t.Rows = append(t.Rows, []string{
			a.ApplicantName,
			a.ApplicantEmail,
			a.ApplicantPhone,
			a.JobTitle,
			a.CompanyName,
			a.JobCategory,
			a.City + ", " + a.Country,
			a.SalaryLabel(),
			a.AppliedAt.Format("2006-01-02"),
		})
	}
	return t
}

// statsReportTables flattens the aggregate report into sections.
// Sections with no rows are omitted, the overall summary always stays.
func statsReportTables(stats *domain.ReportStats) []reportTable {
	tables := make([]reportTable, 0, 5)

	overall := reportTable{
		Title:  "Overall Statistics",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Applications", formatInt(stats.OverallStats.TotalApplications)},
			{"Unique Applicants", formatInt(stats.OverallStats.UniqueApplicants)},
			{"Jobs With Applications", formatInt(stats.OverallStats.JobsWithApplications)},
			{"Total Jobs", formatInt(stats.OverallStats.TotalJobs)},
			{"Avg Applications Per Job", formatFloat(stats.OverallStats.AvgApplicationsPerJob)},
		},
	}
	tables = append(tables, overall)

	if len(stats.Trends) > 0 {
		t := reportTable{
			Title:  "Application Trends",
			Header: []string{"Period", "Applications", "Unique Jobs", "Unique Applicants"},
			Rows:   make([][]string, 0, len(stats.Trends)),
		}
		for _, p := range stats.Trends {
			t.Rows = append(t.Rows, []string{p.Period, formatInt(p.ApplicationCount), formatInt(p.UniqueJobs), formatInt(p.UniqueApplicants)})
		}
		tables = append(tables, t)
	}

	if len(stats.JobStats) > 0 {
		t := reportTable{
			Title:  "Applications Per Job",
			Header: []string{"Job Title", "Category", "Company", "Applications", "Posted On", "Status"},
			Rows:   make([][]string, 0, len(stats.JobStats)),
		}
		for _, j := range stats.JobStats {
			status := "Active"
			if j.Expired {
				status = "Expired"
			}
			t.Rows = append(t.Rows, []string{j.Title, j.Category, j.CompanyName, formatInt(j.ApplicationCount), j.PostedOn.Format("2006-01-02"), status})
		}
		tables = append(tables, t)
	}

	if len(stats.CategoryStats) > 0 {
		t := reportTable{
			Title:  "Applications Per Category",
			Header: []string{"Category", "Total Jobs", "Total Applications", "Avg Per Job"},
			Rows:   make([][]string, 0, len(stats.CategoryStats)),
		}
		for _, c := range stats.CategoryStats {
			t.Rows = append(t.Rows, []string{c.Category, formatInt(c.TotalJobs), formatInt(c.TotalApplications), formatFloat(c.AvgApplicationsPerJob)})
		}
		tables = append(tables, t)
	}

	if len(stats.CompanyStats) > 0 {
		t := reportTable{
			Title:  "Applications Per Company",
			Header: []string{"Company", "Total Jobs", "Total Applications", "Avg Per Job"},
			Rows:   make([][]string, 0, len(stats.CompanyStats)),
		}
		for _, c := range stats.CompanyStats {
			t.Rows = append(t.Rows, []string{c.CompanyName, formatInt(c.TotalJobs), formatInt(c.TotalApplications), formatFloat(c.AvgApplicationsPerJob)})
		}
		tables = append(tables, t)
	}

	return tables
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// renderPDF lays the tables out on landscape A4 pages.
func renderPDF(header exportHeader, tables []reportTable) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, header.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, header.PeriodLabel, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, header.Generated, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	for _, table := range tables {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, table.Title, "", 1, "L", false, 0, "")

		colWidth := usable / float64(len(table.Header))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(45, 86, 73)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range table.Header {
			pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(240, 240, 240)
		for i, row := range table.Rows {
			fill := i%2 == 1
			for _, cell := range row {
				pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
		}
		if len(table.Rows) == 0 {
			pdf.CellFormat(usable, 6, "No data", "1", 1, "C", false, 0, "")
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// renderExcel writes each table to its own sheet.
func renderExcel(header exportHeader, tables []reportTable) ([]byte, error) {
	f := excelize.NewFile()

	// Style headers - Dark Blue background with White text
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for idx, table := range tables {
		sheetName := table.Title
		if idx == 0 {
			f.SetSheetName("Sheet1", sheetName)
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
			}
		}

		f.SetCellValue(sheetName, "A1", header.Title)
		f.SetCellValue(sheetName, "A2", header.PeriodLabel)
		f.SetCellValue(sheetName, "A3", header.Generated)

		const headerRow = 5
		for i, h := range table.Header {
			cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
			f.SetCellValue(sheetName, cell, h)
		}
		startCell, _ := excelize.CoordinatesToCellName(1, headerRow)
		endCell, _ := excelize.CoordinatesToCellName(len(table.Header), headerRow)
		f.SetCellStyle(sheetName, startCell, endCell, headerStyle)

		for rowIdx, row := range table.Rows {
			for colIdx, cell := range row {
				name, _ := excelize.CoordinatesToCellName(colIdx+1, headerRow+1+rowIdx)
				f.SetCellValue(sheetName, name, cell)
			}
		}

		for i := range table.Header {
			colName, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(sheetName, colName, colName, 20)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

// renderCSV concatenates the tables, separated by a blank line with the
// section title on its own row.
func renderCSV(tables []reportTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for idx, table := range tables {
		if idx > 0 {
			if err := w.Write([]string{}); err != nil {
				return nil, fmt.Errorf("failed to write CSV: %w", err)
			}
		}
		if len(tables) > 1 {
			if err := w.Write([]string{table.Title}); err != nil {
				return nil, fmt.Errorf("failed to write CSV: %w", err)
			}
		}
		if err := w.Write(table.Header); err != nil {
			return nil, fmt.Errorf("failed to write CSV: %w", err)
		}
		for _, row := range table.Rows {
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("failed to write CSV: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV: %w", err)
	}
	return buf.Bytes(), nil
}
