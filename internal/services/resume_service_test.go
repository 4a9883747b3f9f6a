package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/httperr"
	"jobboard/internal/models"
)

type fakeStore struct {
	saved int
}

func (f *fakeStore) Save(file *multipart.FileHeader) (string, error) {
	f.saved++
	return "uploads/resumes/" + file.Filename, nil
}

// multipartFile builds a real *multipart.FileHeader the way gin would hand
// one to the service.
func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestUploadResume(t *testing.T) {
	db := testDB(t)
	store := &fakeStore{}
	svc := NewResumeService(db, store)
	employer := seedUser(t, db, "acme", models.RoleEmployer)
	seeker := seedUser(t, db, "bob", models.RoleJobseeker)
	job := seedJob(t, db, employer, "Engineer", time.Now())
	app := &models.Application{JobID: job.ID, ApplicantID: seeker.UserID, AppliedAt: time.Now(), Status: models.StatusApplied}
	require.NoError(t, db.Create(app).Error)

	resume, err := svc.Upload(app.ID, multipartFile(t, "bob.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.Equal(t, app.ID, resume.ApplicationID)
	assert.Equal(t, "uploads/resumes/bob.pdf", resume.FilePath)
	assert.False(t, resume.UploadedAt.IsZero())
	assert.Equal(t, 1, store.saved)
}

func TestUploadResumeTwiceConflicts(t *testing.T) {
	db := testDB(t)
	svc := NewResumeService(db, &fakeStore{})
	employer := seedUser(t, db, "acme", models.RoleEmployer)
	seeker := seedUser(t, db, "bob", models.RoleJobseeker)
	job := seedJob(t, db, employer, "Engineer", time.Now())
	app := &models.Application{JobID: job.ID, ApplicantID: seeker.UserID, AppliedAt: time.Now(), Status: models.StatusApplied}
	require.NoError(t, db.Create(app).Error)

	_, err := svc.Upload(app.ID, multipartFile(t, "bob.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	_, err = svc.Upload(app.ID, multipartFile(t, "bob-v2.pdf", []byte("%PDF-1.4")))
	require.ErrorIs(t, err, httperr.ErrConflict)

	var count int64
	require.NoError(t, db.Model(&models.Resume{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUploadResumeUnknownApplication(t *testing.T) {
	db := testDB(t)
	svc := NewResumeService(db, &fakeStore{})

	_, err := svc.Upload(123, multipartFile(t, "bob.pdf", []byte("%PDF-1.4")))
	require.ErrorIs(t, err, httperr.ErrNotFound)
}
