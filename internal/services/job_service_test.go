package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/httperr"
	"jobboard/internal/models"
)

func TestCreateJobSetsOwner(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, "acme", models.RoleEmployer)

	job, err := svc.Create(employer, jobRequest("Engineer"))
	require.NoError(t, err)
	assert.Equal(t, employer.UserID, job.CreatedByID)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestCreateJobForbiddenForJobseeker(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	seeker := seedUser(t, db, "bob", models.RoleJobseeker)

	_, err := svc.Create(seeker, jobRequest("Engineer"))
	require.ErrorIs(t, err, httperr.ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Count(&count).Error)
	assert.Zero(t, count, "no job row may be created on a forbidden create")
}

func TestListJobsNewestFirst(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, "acme", models.RoleEmployer)

	base := time.Now().Add(-time.Hour)
	seedJob(t, db, employer, "first", base)
	seedJob(t, db, employer, "second", base.Add(time.Minute))
	seedJob(t, db, employer, "third", base.Add(2*time.Minute))

	jobs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "third", jobs[0].Title)
	assert.Equal(t, "second", jobs[1].Title)
	assert.Equal(t, "first", jobs[2].Title)
}

func TestGetJobNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)

	_, err := svc.Get(42)
	require.ErrorIs(t, err, httperr.ErrNotFound)
}

func TestDeleteJobCascades(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	employer := seedUser(t, db, "acme", models.RoleEmployer)
	seeker := seedUser(t, db, "bob", models.RoleJobseeker)
	job := seedJob(t, db, employer, "Engineer", time.Now())

	app := &models.Application{JobID: job.ID, ApplicantID: seeker.UserID, AppliedAt: time.Now(), Status: models.StatusApplied}
	require.NoError(t, db.Create(app).Error)
	require.NoError(t, db.Create(&models.Resume{ApplicationID: app.ID, FilePath: "uploads/r.pdf", UploadedAt: time.Now()}).Error)

	require.NoError(t, svc.Delete(employer, job.ID))

	var jobs, apps, resumes int64
	require.NoError(t, db.Model(&models.Job{}).Count(&jobs).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&apps).Error)
	require.NoError(t, db.Model(&models.Resume{}).Count(&resumes).Error)
	assert.Zero(t, jobs)
	assert.Zero(t, apps)
	assert.Zero(t, resumes)
}

func TestDeleteJobForbiddenForNonOwner(t *testing.T) {
	db := testDB(t)
	svc := NewJobService(db)
	owner := seedUser(t, db, "acme", models.RoleEmployer)
	other := seedUser(t, db, "rival", models.RoleEmployer)
	job := seedJob(t, db, owner, "Engineer", time.Now())

	err := svc.Delete(other, job.ID)
	require.ErrorIs(t, err, httperr.ErrForbidden)

	var count int64
	require.NoError(t, db.Model(&models.Job{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
