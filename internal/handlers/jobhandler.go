package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/httperr"
	"jobboard/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// List is GET /jobs/ — public, newest first.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get is GET /jobs/:id/ — public.
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.JobService.Get(id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is POST /jobs/ — employers only.
func (h *JobHandler) Create(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}

	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(identity, &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Delete is DELETE /jobs/:id/ — owning employer only; cascades.
func (h *JobHandler) Delete(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.JobService.Delete(identity, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
