package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/api/metrics"
	"github.com/trw5157-hue/garage/internal/core/domain"
	"github.com/trw5157-hue/garage/internal/core/ports"
)

// JobHandler handles HTTP requests for work-order operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /jobs (manager only).
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  domain.Job
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), toCreateJobInput(req))
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, job)
}

// List handles GET /jobs?status=. Mechanics only receive their own
// assignments; "All Status" (or no filter) returns every visible job.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   domain.Job
// @Failure      401     {object}  errorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.List(c.Request().Context(), actor, c.QueryParam("status"))
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []*domain.Job{}
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /jobs/:id. Partial update: absent fields stay as they
// are, and fields outside the actor's writable set are dropped silently.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  domain.Job
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toJobPatch(req))
	if err != nil {
		return err
	}

	if req.Status != nil {
		metrics.JobStatusUpdatesTotal.WithLabelValues(*req.Status).Inc()
	}
	return c.JSON(http.StatusOK, job)
}

// AddPhoto handles POST /jobs/:id/photos (multipart field "photo").
//
// @Summary      Attach a photo to a job
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Job ID"
// @Param        photo  formData  file    true  "Image file"
// @Success      200    {object}  addPhotoResponse
// @Failure      404    {object}  errorResponse
// @Router       /jobs/{id}/photos [post]
func (h *JobHandler) AddPhoto(c echo.Context) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read photo")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read photo")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	photoURL, err := h.service.AddPhoto(c.Request().Context(), c.Param("id"), image, contentType)
	if err != nil {
		return err
	}

	metrics.PhotosAddedTotal.Inc()
	return c.JSON(http.StatusOK, addPhotoResponse{
		Message:  "Photo added successfully",
		PhotoURL: photoURL,
	})
}

// Delete handles DELETE /jobs/:id (manager only). Permanent removal.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}

// Stats handles GET /stats.
//
// @Summary      Job counts by status bucket
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.JobStats
// @Failure      401  {object}  errorResponse
// @Router       /stats [get]
func (h *JobHandler) Stats(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.service.Stats(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
