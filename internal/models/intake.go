package models

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	Email           string    `gorm:"type:text;not null;index" json:"email"`
	Phone           string    `gorm:"type:text" json:"phone,omitempty"`
	Skills          string    `gorm:"type:text" json:"skills,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	CurrentRole     string    `gorm:"type:text" json:"current_role,omitempty"`
	ExpectedSalary  string    `gorm:"type:text" json:"expected_salary,omitempty"`
	ResumePath      string    `gorm:"type:text" json:"-"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	Status          string    `gorm:"type:text;default:'new'" json:"status"`
	SubmittedAt     time.Time `gorm:"type:timestamp;default:now()" json:"submitted_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

type Employer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyName    string    `gorm:"type:text;not null" json:"company_name"`
	ContactName    string    `gorm:"type:text;not null" json:"contact_name"`
	ContactEmail   string    `gorm:"type:text;not null" json:"contact_email"`
	Phone          string    `gorm:"type:text" json:"phone,omitempty"`
	Industry       string    `gorm:"type:text" json:"industry,omitempty"`
	CompanySize    string    `gorm:"type:text" json:"company_size,omitempty"`
	HiringNeeds    string    `gorm:"type:text;not null" json:"hiring_needs"`
	PositionsCount int       `json:"positions_count,omitempty"`
	BudgetRange    string    `gorm:"type:text" json:"budget_range,omitempty"`
	Timeline       string    `gorm:"type:text" json:"timeline,omitempty"`
	Status         string    `gorm:"type:text;default:'pending'" json:"status"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	SubmittedAt    time.Time `gorm:"type:timestamp;default:now()" json:"submitted_at"`
}

func (Employer) TableName() string {
	return "employers"
}

type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Subject   string    `gorm:"type:text;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

type Testimonial struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Position   string    `gorm:"type:text" json:"position,omitempty"`
	Company    string    `gorm:"type:text" json:"company,omitempty"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Rating     int       `gorm:"default:5" json:"rating"`
	ImageURL   string    `gorm:"type:text" json:"image_url,omitempty"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
