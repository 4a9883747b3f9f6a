package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/httperr"
	"jobboard/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records a jobseeker's application to a job. The composite unique
// index on (job_id, applicant_id) is the duplicate guard: a concurrent
// second apply loses at the database and comes back as a conflict.
func (s *ApplicationService) Apply(identity auth.Identity, jobID uint) (*models.Application, error) {
	if identity.Role != models.RoleJobseeker {
		return nil, httperr.ErrForbidden
	}

	var job models.Job
	err := s.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:       job.ID,
		ApplicantID: identity.UserID,
		AppliedAt:   time.Now(),
		Status:      models.StatusApplied,
	}
	err = s.DB.Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, httperr.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns the caller's own applications, any role.
func (s *ApplicationService) ListMine(identity auth.Identity) ([]models.Application, error) {
	apps := make([]models.Application, 0)
	err := s.DB.Preload("Job").Preload("Resume").
		Where("applicant_id = ?", identity.UserID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListApplicantsForJob returns the applications against a job the caller
// owns. Ownership is a filter, not a check: asking about someone else's
// job (or a missing one) yields an empty list, never an error.
func (s *ApplicationService) ListApplicantsForJob(identity auth.Identity, jobID uint) ([]dtos.ApplicantView, error) {
	if identity.Role != models.RoleEmployer {
		return nil, httperr.ErrForbidden
	}

	var apps []models.Application
	err := s.DB.Preload("Applicant").Preload("Resume").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.job_id = ? AND jobs.created_by_id = ?", jobID, identity.UserID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	views := make([]dtos.ApplicantView, 0, len(apps))
	for _, app := range apps {
		views = append(views, dtos.NewApplicantView(app))
	}
	return views, nil
}

// SetStatus moves an application through its review lifecycle. Only the
// employer owning the application's job may call it.
func (s *ApplicationService) SetStatus(identity auth.Identity, appID uint, status models.Status) (*models.Application, error) {
	if identity.Role != models.RoleEmployer {
		return nil, httperr.ErrForbidden
	}

	var app models.Application
	err := s.DB.Preload("Job").First(&app, appID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if app.Job == nil || app.Job.CreatedByID != identity.UserID {
		return nil, httperr.ErrForbidden
	}

	if err := s.DB.Model(&app).Update("status", status).Error; err != nil {
		return nil, err
	}
	app.Status = status
	return &app, nil
}
