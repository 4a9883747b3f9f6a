package dtos

import (
	"time"

	"jobboard/internal/models"
)

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResumeView is the resume metadata exposed to employers, not the row
// itself (no ids, no application linkage).
type ResumeView struct {
	File       string    `json:"file"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ApplicantView is the employer-facing rendering of one application:
// display name plus status, with resume metadata once one is attached.
type ApplicantView struct {
	ID                uint          `json:"id"`
	ApplicantUsername string        `json:"applicant_username"`
	Status            models.Status `json:"status"`
	AppliedAt         time.Time     `json:"applied_at"`
	Resume            *ResumeView   `json:"resume"`
}

// NewApplicantView assumes the Applicant and Resume associations have been
// preloaded.
func NewApplicantView(app models.Application) ApplicantView {
	view := ApplicantView{
		ID:                app.ID,
		ApplicantUsername: app.Applicant.Username,
		Status:            app.Status,
		AppliedAt:         app.AppliedAt,
	}
	if app.Resume != nil {
		view.Resume = &ResumeView{
			File:       app.Resume.FilePath,
			UploadedAt: app.Resume.UploadedAt,
		}
	}
	return view
}
