package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) domain.ReportRepository {
	return &reportRepo{db: db}
}

// periodBucket maps a validated period to its truncation expression and
// TO_CHAR label format. Values are fixed SQL fragments, user input never
// reaches query text (every filter value is bound as a parameter).
var periodBucket = map[string]struct {
	expr   string
	format string
}{
	domain.PeriodDaily:   {"DATE(a.created_at)", "YYYY-MM-DD"},
	domain.PeriodWeekly:  {"DATE_TRUNC('week', a.created_at)", `IYYY-"W"IW`},
	domain.PeriodMonthly: {"DATE_TRUNC('month', a.created_at)", "YYYY-MM"},
}

// dateConds appends parameterized bounds on an application timestamp
// column. Bounds are inclusive, the end already carries 23:59:59.
func dateConds(f domain.ReportFilter, col string, conds []string, args []any) ([]string, []any) {
	if f.Start != nil {
		args = append(args, *f.Start)
		conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		conds = append(conds, fmt.Sprintf("%s <= $%d", col, len(args)))
	}
	return conds, args
}

// jobConds appends the job-level equality filters (company, category, job).
func jobConds(f domain.ReportFilter, alias string, conds []string, args []any) ([]string, []any) {
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		conds = append(conds, fmt.Sprintf("%s.company_id = $%d", alias, len(args)))
	}
	if f.Category != nil {
		args = append(args, *f.Category)
		conds = append(conds, fmt.Sprintf("%s.category = $%d", alias, len(args)))
	}
	if f.JobID != nil {
		args = append(args, *f.JobID)
		conds = append(conds, fmt.Sprintf("%s.id = $%d", alias, len(args)))
	}
	return conds, args
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return "1=1"
	}
	return strings.Join(conds, " AND ")
}

// boundedAppCounts renders the per-job application count subaggregate,
// date-bounded the same way as the top-level queries. Args accumulate
// into the shared slice so placeholder numbering stays sequential.
func boundedAppCounts(f domain.ReportFilter, args []any) (string, []any) {
	var conds []string
	conds, args = dateConds(f, "created_at", conds, args)
	sub := fmt.Sprintf(
		`SELECT job_id, COUNT(*) AS app_count FROM applications WHERE %s GROUP BY job_id`,
		whereClause(conds))
	return sub, args
}

func (r *reportRepo) Trends(ctx context.Context, filter domain.ReportFilter) ([]domain.TrendPoint, error) {
	bucket := periodBucket[filter.Period]

	var conds []string
	var args []any
	conds, args = dateConds(filter, "a.created_at", conds, args)
	conds, args = jobConds(filter, "j", conds, args)

	query := fmt.Sprintf(`
		SELECT
			TO_CHAR(%[1]s, '%[2]s') AS period,
			COUNT(*) AS application_count,
			COUNT(DISTINCT a.job_id) AS unique_jobs,
			COUNT(DISTINCT a.applicant_id) AS unique_applicants
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE %[3]s
		GROUP BY %[1]s
		ORDER BY %[1]s`,
		bucket.expr, bucket.format, whereClause(conds))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("trends query: %w", err)
	}
	defer rows.Close()

	trends := make([]domain.TrendPoint, 0)
	for rows.Next() {
		var t domain.TrendPoint
		if err := rows.Scan(&t.Period, &t.ApplicationCount, &t.UniqueJobs, &t.UniqueApplicants); err != nil {
			return nil, fmt.Errorf("trends scan: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

func (r *reportRepo) JobStats(ctx context.Context, filter domain.ReportFilter) ([]domain.JobStat, error) {
	// The date bound lives in the join condition so jobs without
	// applications in the window still appear with a zero count.
	var joinConds, conds []string
	var args []any
	joinConds, args = dateConds(filter, "a.created_at", joinConds, args)
	conds, args = jobConds(filter, "j", conds, args)

	joinClause := ""
	if len(joinConds) > 0 {
		joinClause = " AND " + strings.Join(joinConds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			j.id,
			j.title,
			j.category,
			COALESCE(c.company_name, '') AS company_name,
			COUNT(a.id) AS application_count,
			j.job_posted_on,
			j.expired
		FROM jobs j
		LEFT JOIN applications a ON j.id = a.job_id%s
		LEFT JOIN companies c ON j.company_id = c.id
		WHERE %s
		GROUP BY j.id, j.title, j.category, c.company_name, j.job_posted_on, j.expired
		ORDER BY application_count DESC, j.id`,
		joinClause, whereClause(conds))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("job stats query: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.JobStat, 0)
	for rows.Next() {
		var s domain.JobStat
		if err := rows.Scan(&s.JobID, &s.Title, &s.Category, &s.CompanyName, &s.ApplicationCount, &s.PostedOn, &s.Expired); err != nil {
			return nil, fmt.Errorf("job stats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepo) CategoryStats(ctx context.Context, filter domain.ReportFilter) ([]domain.CategoryStat, error) {
	// One row per job via the per-job subaggregate, so the average is
	// the per-job mean with zero-application jobs counted as 0.
	var args []any
	sub, args := boundedAppCounts(filter, args)

	var conds []string
	conds, args = jobConds(filter, "j", conds, args)

	query := fmt.Sprintf(`
		SELECT
			j.category,
			COUNT(DISTINCT j.id) AS total_jobs,
			COALESCE(SUM(ac.app_count), 0) AS total_applications,
			ROUND(AVG(COALESCE(ac.app_count, 0)), 2) AS avg_applications_per_job
		FROM jobs j
		LEFT JOIN (%s) ac ON j.id = ac.job_id
		WHERE %s
		GROUP BY j.category
		ORDER BY total_applications DESC, j.category`,
		sub, whereClause(conds))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("category stats query: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.CategoryStat, 0)
	for rows.Next() {
		var s domain.CategoryStat
		if err := rows.Scan(&s.Category, &s.TotalJobs, &s.TotalApplications, &s.AvgApplicationsPerJob); err != nil {
			return nil, fmt.Errorf("category stats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepo) CompanyStats(ctx context.Context, filter domain.ReportFilter) ([]domain.CompanyStat, error) {
	// Inner join to jobs excludes companies without any matching job.
	var args []any
	sub, args := boundedAppCounts(filter, args)

	var conds []string
	conds, args = jobConds(filter, "j", conds, args)

	query := fmt.Sprintf(`
		SELECT
			c.id,
			c.company_name,
			COUNT(DISTINCT j.id) AS total_jobs,
			COALESCE(SUM(ac.app_count), 0) AS total_applications,
			ROUND(AVG(COALESCE(ac.app_count, 0)), 2) AS avg_applications_per_job
		FROM companies c
		JOIN jobs j ON j.company_id = c.id
		LEFT JOIN (%s) ac ON j.id = ac.job_id
		WHERE %s
		GROUP BY c.id, c.company_name
		ORDER BY total_applications DESC, c.company_name`,
		sub, whereClause(conds))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("company stats query: %w", err)
	}
	defer rows.Close()

	stats := make([]domain.CompanyStat, 0)
	for rows.Next() {
		var s domain.CompanyStat
		if err := rows.Scan(&s.CompanyID, &s.CompanyName, &s.TotalJobs, &s.TotalApplications, &s.AvgApplicationsPerJob); err != nil {
			return nil, fmt.Errorf("company stats scan: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *reportRepo) OverallStats(ctx context.Context, filter domain.ReportFilter) (*domain.OverallStats, error) {
	var joinConds, conds []string
	var args []any
	joinConds, args = dateConds(filter, "a.created_at", joinConds, args)
	conds, args = jobConds(filter, "j", conds, args)

	joinClause := ""
	if len(joinConds) > 0 {
		joinClause = " AND " + strings.Join(joinConds, " AND ")
	}

	// The zero-jobs guard keeps the average at 0 for empty filter sets.
	query := fmt.Sprintf(`
		SELECT
			COUNT(DISTINCT a.id) AS total_applications,
			COUNT(DISTINCT a.applicant_id) AS unique_applicants,
			COUNT(DISTINCT a.job_id) AS jobs_with_applications,
			COUNT(DISTINCT j.id) AS total_jobs,
			CASE WHEN COUNT(DISTINCT j.id) = 0 THEN 0
			     ELSE ROUND(COUNT(DISTINCT a.id)::numeric / COUNT(DISTINCT j.id), 2)
			END AS avg_applications_per_job
		FROM jobs j
		LEFT JOIN applications a ON j.id = a.job_id%s
		WHERE %s`,
		joinClause, whereClause(conds))

	var stats domain.OverallStats
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&stats.TotalApplications, &stats.UniqueApplicants, &stats.JobsWithApplications,
		&stats.TotalJobs, &stats.AvgApplicationsPerJob,
	)
	if err != nil {
		return nil, fmt.Errorf("overall stats query: %w", err)
	}
	return &stats, nil
}

func (r *reportRepo) Detailed(ctx context.Context, filter domain.ReportFilter) ([]domain.DetailedApplication, error) {
	var conds []string
	var args []any
	conds, args = dateConds(filter, "a.created_at", conds, args)
	conds, args = jobConds(filter, "j", conds, args)

	query := fmt.Sprintf(`
		SELECT
			a.id AS application_id,
			a.name AS applicant_name,
			a.email AS applicant_email,
			a.phone AS applicant_phone,
			a.created_at AS application_date,
			j.title AS job_title,
			j.category AS job_category,
			c.company_name,
			j.country,
			j.city,
			j.fixed_salary,
			j.salary_from,
			j.salary_to
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN companies c ON j.company_id = c.id
		WHERE %s
		ORDER BY a.created_at DESC, a.id DESC`,
		whereClause(conds))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("detailed report query: %w", err)
	}
	defer rows.Close()

	apps := make([]domain.DetailedApplication, 0)
	for rows.Next() {
		var d domain.DetailedApplication
		if err := rows.Scan(
			&d.ApplicationID, &d.ApplicantName, &d.ApplicantEmail, &d.ApplicantPhone,
			&d.AppliedAt, &d.JobTitle, &d.JobCategory, &d.CompanyName,
			&d.Country, &d.City, &d.FixedSalary, &d.SalaryFrom, &d.SalaryTo,
		); err != nil {
			return nil, fmt.Errorf("detailed report scan: %w", err)
		}
		apps = append(apps, d)
	}
	return apps, rows.Err()
}

func (r *reportRepo) FilterOptions(ctx context.Context) (*domain.ReportFilterOptions, error) {
	opts := &domain.ReportFilterOptions{
		Companies:  make([]domain.CompanyOption, 0),
		Categories: make([]string, 0),
		Jobs:       make([]domain.JobOption, 0),
	}

	rows, err := r.db.Query(ctx, `SELECT id, company_name FROM companies ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("filter companies query: %w", err)
	}
	for rows.Next() {
		var c domain.CompanyOption
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("filter companies scan: %w", err)
		}
		opts.Companies = append(opts.Companies, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `SELECT DISTINCT category FROM jobs ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("filter categories query: %w", err)
	}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			rows.Close()
			return nil, fmt.Errorf("filter categories scan: %w", err)
		}
		opts.Categories = append(opts.Categories, category)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(ctx, `
		SELECT j.id, j.title, c.company_name, j.category
		FROM jobs j
		JOIN companies c ON j.company_id = c.id
		ORDER BY j.title`)
	if err != nil {
		return nil, fmt.Errorf("filter jobs query: %w", err)
	}
	for rows.Next() {
		var j domain.JobOption
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyName, &j.Category); err != nil {
			rows.Close()
			return nil, fmt.Errorf("filter jobs scan: %w", err)
		}
		opts.Jobs = append(opts.Jobs, j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, `
		SELECT MIN(created_at), MAX(created_at) FROM applications`).
		Scan(&opts.DateRange.Earliest, &opts.DateRange.Latest)
	if err != nil {
		return nil, fmt.Errorf("filter date range query: %w", err)
	}

	return opts, nil
}
