package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Report period granularities. Weekly buckets are ISO weeks
// (Monday start), matching Postgres DATE_TRUNC('week', ...).
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Report export contract
const (
	ReportTypeDetailed = "detailed"
	ReportTypeStats    = "stats"

	ExportFormatPDF   = "pdf"
	ExportFormatExcel = "excel"
	ExportFormatCSV   = "csv"
)

const reportDateLayout = "2006-01-02"

// ReportFilter is the per-request value object narrowing a report.
// Start/End are resolved to the inclusive bounds
// [startDate 00:00:00, endDate 23:59:59]; nil means unbounded.
type ReportFilter struct {
	Start     *time.Time
	End       *time.Time
	Period    string
	CompanyID *int64
	Category  *string
	JobID     *int64
}

// ParseReportFilter builds a ReportFilter from query-string values.
// Malformed values are rejected rather than silently dropped, a bad
// date must never reach query construction.
func ParseReportFilter(values url.Values) (ReportFilter, error) {
	f := ReportFilter{Period: PeriodDaily}

	if s := values.Get("startDate"); s != "" {
		t, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return f, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", s)
		}
		f.Start = &t
	}
	if s := values.Get("endDate"); s != "" {
		t, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return f, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", s)
		}
		end := t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		f.End = &end
	}
	if s := values.Get("period"); s != "" {
		switch s {
		case PeriodDaily, PeriodWeekly, PeriodMonthly:
			f.Period = s
		default:
			return f, fmt.Errorf("invalid period %q, expected daily, weekly or monthly", s)
		}
	}
	if s := values.Get("companyId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return f, fmt.Errorf("invalid companyId %q", s)
		}
		f.CompanyID = &id
	}
	if s := values.Get("category"); s != "" {
		category := s
		f.Category = &category
	}
	if s := values.Get("jobId"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return f, fmt.Errorf("invalid jobId %q", s)
		}
		f.JobID = &id
	}

	return f, nil
}

// DateRange echoes the requested bounds back to the dashboard.
type DateRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (f ReportFilter) DateRange() DateRange {
	var r DateRange
	if f.Start != nil {
		r.StartDate = f.Start.Format(reportDateLayout)
	}
	if f.End != nil {
		r.EndDate = f.End.Format(reportDateLayout)
	}
	return r
}

// Label describes the range for report headers, e.g. "2024-01-01 to 2024-02-01".
func (f ReportFilter) Label() string {
	switch {
	case f.Start != nil && f.End != nil:
		return f.Start.Format(reportDateLayout) + " to " + f.End.Format(reportDateLayout)
	case f.Start != nil:
		return "From " + f.Start.Format(reportDateLayout)
	case f.End != nil:
		return "Until " + f.End.Format(reportDateLayout)
	}
	return "All Time"
}

// TrendPoint is one time bucket of the application trend series.
type TrendPoint struct {
	Period           string `json:"period"`
	ApplicationCount int64  `json:"application_count"`
	UniqueJobs       int64  `json:"unique_jobs"`
	UniqueApplicants int64  `json:"unique_applicants"`
}

// JobStat is the per-job application count, zero-application jobs included.
type JobStat struct {
	JobID            int64     `json:"id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	CompanyName      string    `json:"company_name"`
	ApplicationCount int64     `json:"application_count"`
	PostedOn         time.Time `json:"job_posted_on"`
	Expired          bool      `json:"expired"`
}

type CategoryStat struct {
	Category              string  `json:"category"`
	TotalJobs             int64   `json:"total_jobs"`
	TotalApplications     int64   `json:"total_applications"`
	AvgApplicationsPerJob float64 `json:"avg_applications_per_job"`
}

type CompanyStat struct {
	CompanyID             int64   `json:"id"`
	CompanyName           string  `json:"company_name"`
	TotalJobs             int64   `json:"total_jobs"`
	TotalApplications     int64   `json:"total_applications"`
	AvgApplicationsPerJob float64 `json:"avg_applications_per_job"`
}

// OverallStats is the single summary row across the filtered set.
type OverallStats struct {
	TotalApplications     int64   `json:"total_applications"`
	UniqueApplicants      int64   `json:"unique_applicants"`
	JobsWithApplications  int64   `json:"jobs_with_applications"`
	TotalJobs             int64   `json:"total_jobs"`
	AvgApplicationsPerJob float64 `json:"avg_applications_per_job"`
}

// ReportStats bundles the five aggregate result sets for the dashboard.
type ReportStats struct {
	Period        string         `json:"period"`
	DateRange     DateRange      `json:"dateRange"`
	Trends        []TrendPoint   `json:"trends"`
	JobStats      []JobStat      `json:"jobStats"`
	CategoryStats []CategoryStat `json:"categoryStats"`
	CompanyStats  []CompanyStat  `json:"companyStats"`
	OverallStats  OverallStats   `json:"overallStats"`
}

// DetailedApplication is one flattened row of the row-level report.
type DetailedApplication struct {
	ApplicationID  int64     `json:"application_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	ApplicantPhone string    `json:"applicant_phone"`
	AppliedAt      time.Time `json:"application_date"`
	JobTitle       string    `json:"job_title"`
	JobCategory    string    `json:"job_category"`
	CompanyName    string    `json:"company_name"`
	Country        string    `json:"country"`
	City           string    `json:"city"`
	FixedSalary    *int64    `json:"fixed_salary,omitempty"`
	SalaryFrom     *int64    `json:"salary_from,omitempty"`
	SalaryTo       *int64    `json:"salary_to,omitempty"`
}

// SalaryLabel renders either the fixed salary or the from-to range.
func (d DetailedApplication) SalaryLabel() string {
	if d.FixedSalary != nil {
		return strconv.FormatInt(*d.FixedSalary, 10)
	}
	if d.SalaryFrom != nil && d.SalaryTo != nil {
		return strconv.FormatInt(*d.SalaryFrom, 10) + " - " + strconv.FormatInt(*d.SalaryTo, 10)
	}
	return ""
}

type DetailedReport struct {
	Applications []DetailedApplication `json:"applications"`
	Total        int                   `json:"total"`
	Filters      DateRange             `json:"filters"`
}

// Report filter options (the values a report can be parameterized by)
type CompanyOption struct {
	ID   int64  `json:"id"`
	Name string `json:"company_name"`
}

type JobOption struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
}

type ApplicationDateRange struct {
	Earliest *time.Time `json:"earliest_application"`
	Latest   *time.Time `json:"latest_application"`
}

type ReportFilterOptions struct {
	Companies  []CompanyOption      `json:"companies"`
	Categories []string             `json:"categories"`
	Jobs       []JobOption          `json:"jobs"`
	DateRange  ApplicationDateRange `json:"dateRange"`
}

// ReportRepository executes the aggregate queries. Each method is an
// independent read, safe to run concurrently on the shared pool.
type ReportRepository interface {
	Trends(ctx context.Context, filter ReportFilter) ([]TrendPoint, error)
	JobStats(ctx context.Context, filter ReportFilter) ([]JobStat, error)
	CategoryStats(ctx context.Context, filter ReportFilter) ([]CategoryStat, error)
	CompanyStats(ctx context.Context, filter ReportFilter) ([]CompanyStat, error)
	OverallStats(ctx context.Context, filter ReportFilter) (*OverallStats, error)
	Detailed(ctx context.Context, filter ReportFilter) ([]DetailedApplication, error)
	FilterOptions(ctx context.Context) (*ReportFilterOptions, error)
}

// ExportFile is a rendered report ready to send to the client.
type ExportFile struct {
	Data        []byte
	Filename    string
	ContentType string
}

type ReportUsecase interface {
	GetStats(ctx context.Context, filter ReportFilter) (*ReportStats, error)
	GetDetailed(ctx context.Context, filter ReportFilter) (*DetailedReport, error)
	GetFilterOptions(ctx context.Context) (*ReportFilterOptions, error)
	Export(ctx context.Context, filter ReportFilter, reportType, format string) (*ExportFile, error)
}
