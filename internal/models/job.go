package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title           string    `gorm:"type:text;not null;index" json:"title"`
	Company         string    `gorm:"type:text;not null" json:"company"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	Requirements    string    `gorm:"type:text" json:"requirements,omitempty"`
	SalaryMin       int       `json:"salary_min,omitempty"`
	SalaryMax       int       `json:"salary_max,omitempty"`
	SalaryCurrency  string    `gorm:"type:text;default:'USD'" json:"salary_currency"`
	Location        string    `gorm:"type:text;index" json:"location,omitempty"`
	Industry        string    `gorm:"type:text;index" json:"industry,omitempty"`
	JobType         string    `gorm:"type:text;index" json:"job_type,omitempty"`
	ExperienceLevel string    `gorm:"type:text" json:"experience_level,omitempty"`
	SkillsRequired  string    `gorm:"type:text" json:"skills_required,omitempty"`
	PostedDate      time.Time `gorm:"type:timestamp;default:now()" json:"posted_date"`
	IsFeatured      bool      `gorm:"default:false" json:"is_featured"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	ApplyURL        string    `gorm:"type:text" json:"apply_url,omitempty"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) SalaryDisplay() string {
	switch {
	case j.SalaryMin > 0 && j.SalaryMax > 0:
		return fmt.Sprintf("%s %d - %d", j.SalaryCurrency, j.SalaryMin, j.SalaryMax)
	case j.SalaryMin > 0:
		return fmt.Sprintf("%s %d+", j.SalaryCurrency, j.SalaryMin)
	case j.SalaryMax > 0:
		return fmt.Sprintf("Up to %s %d", j.SalaryCurrency, j.SalaryMax)
	default:
		return "Competitive"
	}
}

type AggregatedJob struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SourcePlatform string    `gorm:"type:text;not null;index;uniqueIndex:unique_external_job" json:"source_platform"`
	ExternalID     string    `gorm:"type:text;uniqueIndex:unique_external_job" json:"external_id"`
	Title          string    `gorm:"type:text;not null;index" json:"title"`
	Company        string    `gorm:"type:text;not null" json:"company"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	Location       string    `gorm:"type:text;index" json:"location,omitempty"`
	SalaryInfo     string    `gorm:"type:text" json:"salary_info,omitempty"`
	JobType        string    `gorm:"type:text" json:"job_type,omitempty"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	ScrapedAt      time.Time `gorm:"type:timestamp;default:now()" json:"scraped_at"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
}

func (a *AggregatedJob) TableName() string {
	return "aggregated_jobs"
}

type JobApplication struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	JobID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"job_id"`
	ResumeID    *uuid.UUID `gorm:"type:uuid" json:"resume_id,omitempty"`
	CoverLetter string     `gorm:"type:text" json:"cover_letter,omitempty"`
	Status      string     `gorm:"type:text;default:'submitted'" json:"status"`
	AppliedAt   time.Time  `gorm:"type:timestamp;default:now()" json:"applied_at"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Job    Job    `gorm:"foreignKey:JobID" json:"-"`
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
