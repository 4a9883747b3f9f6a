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

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns every job, most recent first. Public, no identity needed.
func (s *JobService) List() ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := s.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get fetches a single job by id. Public.
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create posts a new job owned by the caller. Employers only.
func (s *JobService) Create(identity auth.Identity, req *dtos.JobCreationRequest) (*models.Job, error) {
	if identity.Role != models.RoleEmployer {
		return nil, httperr.ErrForbidden
	}

	job := &models.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
		CreatedByID: identity.UserID,
		CreatedAt:   time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a job the caller owns, cascading to its applications and
// their resumes. The cleanup runs in one transaction so a crash can never
// leave orphaned rows.
func (s *JobService) Delete(identity auth.Identity, id uint) error {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound
	}
	if err != nil {
		return err
	}
	if identity.Role != models.RoleEmployer || job.CreatedByID != identity.UserID {
		return httperr.ErrForbidden
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var appIDs []uint
		if err := tx.Model(&models.Application{}).Where("job_id = ?", id).Pluck("id", &appIDs).Error; err != nil {
			return err
		}
		if len(appIDs) > 0 {
			if err := tx.Where("application_id IN ?", appIDs).Delete(&models.Resume{}).Error; err != nil {
				return err
			}
			if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Job{}, id).Error
	})
}
