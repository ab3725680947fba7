package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kodig3618/Job-Tracker/internal/delivery/http/response"
	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
)

type JobHandler struct {
	jobUC   domain.JobUsecase
	queryUC domain.QueryUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, queryUC domain.QueryUsecase) {
	handler := &JobHandler{jobUC: jobUC, queryUC: queryUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/export", handler.Export)
		jobs.PUT("/:id", handler.Update)
		jobs.PATCH("/:id/status", handler.UpdateStatus)
		jobs.DELETE("/:id", handler.Delete)
	}
}

type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
	Notes  string        `json:"notes"`
}

// List applies the search/status/sort pipeline to the session user's jobs.
// Defaults: no search, all statuses, newest first.
func (h *JobHandler) List(c *gin.Context) {
	var criteria domain.QueryCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobs, err := h.queryUC.QueryJobs(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *JobHandler) Create(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.AddJob(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job application added successfully!", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var input domain.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details updated successfully!", job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job status updated successfully!", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job application deleted", nil)
}

// Export serves the snapshot as a JSON download named
// job_applications_{username}_{YYYY-MM-DD}.json.
func (h *JobHandler) Export(c *gin.Context) {
	export, err := h.jobUC.ExportJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("job_applications_%s_%s.json",
		export.Username, export.ExportDate.Format(time.DateOnly))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, export)
}
