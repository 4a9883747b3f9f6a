package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	"jobboard/internal/httperr"
	"jobboard/internal/services"
)

type ResumeHandler struct {
	ResumeService *services.ResumeService
}

func NewResumeHandler(r *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{ResumeService: r}
}

// Upload is POST /resumes/upload/:application_id/ — multipart field "file".
func (h *ResumeHandler) Upload(c *gin.Context) {
	if _, ok := auth.IdentityFrom(c); !ok {
		httperr.Abort(c, httperr.ErrUnauthenticated)
		return
	}
	appID, ok := pathID(c, "application_id")
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	resume, err := h.ResumeService.Upload(appID, file)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}
