package services

import (
	"errors"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/httperr"
	"jobboard/internal/models"
	"jobboard/internal/storage"
)

type ResumeService struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewResumeService(db *gorm.DB, store storage.BlobStore) *ResumeService {
	return &ResumeService{DB: db, Store: store}
}

// Upload attaches a file to an application. Any authenticated caller may
// upload; only the one-resume-per-application constraint is enforced. If
// the row insert fails after the blob was written the file is left behind,
// there is no compensating cleanup.
func (s *ResumeService) Upload(applicationID uint, file *multipart.FileHeader) (*models.Resume, error) {
	var app models.Application
	err := s.DB.First(&app, applicationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	path, err := s.Store.Save(file)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		ApplicationID: app.ID,
		FilePath:      path,
		UploadedAt:    time.Now(),
	}
	err = s.DB.Create(resume).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, httperr.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return resume, nil
}
