package models

import (
	"time"
)

// Role is assigned once at registration. There is no role-change path.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleJobseeker Role = "jobseeker"
)

// ValidRole reports whether r is one of the two registrable roles.
func ValidRole(r Role) bool {
	return r == RoleEmployer || r == RoleJobseeker
}

// Status of an Application. Every application starts as StatusApplied.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusReviewed Status = "reviewed"
	StatusRejected Status = "rejected"
	StatusAccepted Status = "accepted"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Title       string `gorm:"size:200;not null" json:"title"`
	Company     string `gorm:"size:200;not null" json:"company"`
	Location    string `gorm:"size:100" json:"location"`
	Salary      string `gorm:"size:100" json:"salary"`
	Description string `gorm:"type:text" json:"description"`

	// Foreign Key: the owning employer
	CreatedByID uint `gorm:"not null;index" json:"created_by"`
	// Association: GORM needs Preload() to fill this
	CreatedBy User `json:"-"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Composite unique index: one application per (job, applicant) pair
	JobID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	Job   *Job `json:"job,omitempty"`

	ApplicantID uint `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Applicant   User `json:"-"`

	AppliedAt time.Time `json:"applied_at"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'applied'" json:"status"`

	Resume *Resume `json:"resume,omitempty"`
}

type Resume struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One resume per application
	ApplicationID uint        `gorm:"not null;uniqueIndex" json:"application_id"`
	Application   Application `json:"-"`

	FilePath   string    `gorm:"not null" json:"file"`
	UploadedAt time.Time `json:"uploaded_at"`
}
