package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - listings only show active jobs (server-side enforced)
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/search", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// PROTECTED routes - employer job management
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.GET("/me", handler.ListMine)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Country     string `json:"country" binding:"required"`
	City        string `json:"city" binding:"required"`
	Location    string `json:"location" binding:"required,min=10"`
	FixedSalary *int64 `json:"fixed_salary"`
	SalaryFrom  *int64 `json:"salary_from"`
	SalaryTo    *int64 `json:"salary_to"`
	CompanyID   *int64 `json:"company_id"`
}

// Create godoc
// @Summary      Post a new job
// @Description  Create a new job posting (Employer only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		CompanyID:   req.CompanyID,
		PostedBy:    c.GetInt64(string(domain.KeyUserID)),
	}

	if err := h.jobUC.PostJob(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", job)
}

// List godoc
// @Summary      List active jobs
// @Description  Paginated listing of all non-expired jobs
// @Tags         jobs
// @Produce      json
// @Param        page      query  int  false  "Page number"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := paginationParams(c)

	result, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs fetched successfully", result)
}

// Search godoc
// @Summary      Search jobs
// @Description  Filtered, paginated job search across active jobs
// @Tags         jobs
// @Produce      json
// @Param        searchKeyword  query  string  false  "Matches title, description or company"
// @Param        category       query  string  false  "Category filter"
// @Param        company        query  string  false  "Company name filter"
// @Param        country        query  string  false  "Country filter"
// @Param        salaryMin      query  int     false  "Minimum salary"
// @Param        salaryMax      query  int     false  "Maximum salary"
// @Param        salaryType     query  string  false  "fixed or ranged"
// @Param        page           query  int     false  "Page number"
// @Success      200  {object}  response.Response
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	page, pageSize := paginationParams(c)

	filter := domain.JobSearchFilter{
		Search:     c.Query("searchKeyword"),
		Category:   c.Query("category"),
		Company:    c.Query("company"),
		Country:    c.Query("country"),
		SalaryType: c.Query("salaryType"),
	}
	if s := c.Query("salaryMin"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid salaryMin"))
			return
		}
		filter.SalaryMin = &v
	}
	if s := c.Query("salaryMax"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("invalid salaryMax"))
			return
		}
		filter.SalaryMax = &v
	}

	result, err := h.jobUC.SearchJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs fetched successfully", result)
}

// GetDetails godoc
// @Summary      Job details
// @Description  Fetch a single job with its company info
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details fetched", job)
}

// ListMine godoc
// @Summary      My posted jobs
// @Description  List jobs posted by the authenticated employer
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/me [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My jobs fetched successfully", jobs)
}

// Update godoc
// @Summary      Update a job
// @Description  Update a job posting owned by the authenticated employer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Country:     req.Country,
		City:        req.City,
		Location:    req.Location,
		FixedSalary: req.FixedSalary,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		CompanyID:   req.CompanyID,
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a job posting owned by the authenticated employer
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}

// paginationParams reads page/pageSize query values, defaults handled
// downstream by the usecase.
func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))
	return page, pageSize
}
