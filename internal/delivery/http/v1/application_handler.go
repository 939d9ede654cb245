package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Submit)
		apps.GET("/employer", handler.ListForEmployer)
		apps.GET("/jobseeker", handler.ListForApplicant)
		apps.DELETE("/:id", handler.Delete)
		apps.GET("/resume/:filename", handler.DownloadResume)
	}
}

// Submit godoc
// @Summary      Apply for a job
// @Description  Submit a job application with a resume file (Job Seeker only)
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true  "Applicant name"
// @Param        email        formData  string  true  "Applicant email"
// @Param        phone        formData  string  true  "Phone number"
// @Param        address      formData  string  true  "Address"
// @Param        coverLetter  formData  string  true  "Cover letter"
// @Param        jobId        formData  int     true  "Job ID"
// @Param        resume       formData  file    true  "Resume file"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Employer not allowed to access this resource"))
		return
	}

	jobID, err := strconv.ParseInt(c.PostForm("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("invalid jobId"))
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	input := domain.SubmitApplicationInput{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		CoverLetter: c.PostForm("coverLetter"),
		Phone:       c.PostForm("phone"),
		Address:     c.PostForm("address"),
		JobID:       jobID,
		ResumeName:  fileHeader.Filename,
		ResumeData:  data,
		ResumeMIME:  fileHeader.Header.Get("Content-Type"),
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListForEmployer godoc
// @Summary      Applications received
// @Description  List applications for all jobs posted by the authenticated employer
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/employer [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForEmployer(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	apps, err := h.applicationUC.ListForEmployer(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications fetched successfully", apps)
}

// ListForApplicant godoc
// @Summary      My applications
// @Description  List applications submitted by the authenticated job seeker
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/jobseeker [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForApplicant(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Employer not allowed to access this resource"))
		return
	}

	apps, err := h.applicationUC.ListForApplicant(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications fetched successfully", apps)
}

// Delete godoc
// @Summary      Withdraw an application
// @Description  Delete an application owned by the authenticated job seeker
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Employer not allowed to access this resource"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID / CastError"))
		return
	}

	if err := h.applicationUC.DeleteOwn(c.Request.Context(), c.GetInt64(string(domain.KeyUserID)), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application deleted successfully", nil)
}

// DownloadResume godoc
// @Summary      Download a resume
// @Description  Serve a stored resume file by its generated filename
// @Tags         applications
// @Produce      octet-stream
// @Param        filename  path  string  true  "Stored resume filename"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /applications/resume/{filename} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	path, err := h.applicationUC.ResumePath(c.Request.Context(), c.Param("filename"))
	if err != nil {
		c.Error(err)
		return
	}

	c.FileAttachment(path, c.Param("filename"))
}
