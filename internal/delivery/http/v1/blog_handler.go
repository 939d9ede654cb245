package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

func NewBlogHandler(public *gin.RouterGroup, protected *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	publicBlogs := public.Group("/blogs")
	{
		publicBlogs.GET("", handler.List)
		publicBlogs.GET("/:id", handler.GetDetails)
	}

	protectedBlogs := protected.Group("/blogs")
	{
		protectedBlogs.POST("", handler.Create)
		protectedBlogs.PUT("/:id", handler.Update)
		protectedBlogs.DELETE("/:id", handler.Delete)
	}
}

type BlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
}

// List godoc
// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /blogs [get]
func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogUC.ListBlogs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blogs fetched successfully", blogs)
}

// GetDetails godoc
// @Summary      Blog post details
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{id} [get]
func (h *BlogHandler) GetDetails(c *gin.Context) {
	blog, err := h.blogUC.GetBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog fetched successfully", blog)
}

// Create godoc
// @Summary      Create a blog post
// @Description  Publish a blog post (Employer only)
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        blog  body      BlogRequest  true  "Blog JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /blogs [post]
// @Security     BearerAuth
func (h *BlogHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	blog := &domain.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		ImageURL: req.ImageURL,
	}
	if blog.Author == "" {
		blog.Author = c.GetString(string(domain.KeyUserEmail))
	}

	if err := h.blogUC.CreateBlog(c.Request.Context(), blog); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Blog created successfully", blog)
}

// Update godoc
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Blog ID"
// @Param        blog  body      BlogRequest  true  "Blog JSON"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{id} [put]
// @Security     BearerAuth
func (h *BlogHandler) Update(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	blog := &domain.Blog{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		ImageURL: req.ImageURL,
	}

	updated, err := h.blogUC.UpdateBlog(c.Request.Context(), c.Param("id"), blog)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog updated successfully", updated)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /blogs/{id} [delete]
// @Security     BearerAuth
func (h *BlogHandler) Delete(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Job Seeker not allowed to access this resource"))
		return
	}

	if err := h.blogUC.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog deleted successfully", nil)
}
