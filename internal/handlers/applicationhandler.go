package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/httperr"
	"jobboard/internal/models"
	"jobboard/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// Apply is POST /applications/apply/:job_id/ — jobseekers only.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	app, err := h.ApplicationService.Apply(identity, jobID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine is GET /applications/my/.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}

	apps, err := h.ApplicationService.ListMine(identity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListApplicants is GET /applications/job/:job_id/ — employer view of the
// applicants for one of their jobs. A job they don't own reads as empty.
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	views, err := h.ApplicationService.ListApplicantsForJob(identity, jobID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SetStatus is PATCH /applications/:id/status/ — owning employer moves an
// application through the review lifecycle.
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	appID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	status := models.Status(req.Status)
	if !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of applied, reviewed, rejected, accepted"})
		return
	}

	app, err := h.ApplicationService.SetStatus(identity, appID, status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
