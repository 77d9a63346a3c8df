package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Filename         string    `gorm:"type:text;not null" json:"filename"`
	FilePath         string    `gorm:"type:text;not null" json:"file_path"`
	UploadDate       time.Time `gorm:"type:timestamp;default:now()" json:"upload_date"`
	ParsedText       string    `gorm:"type:text" json:"-"`
	ExtractedSkills  string    `gorm:"type:text" json:"extracted_skills,omitempty"`
	ExperienceYears  *int      `json:"experience_years,omitempty"`
	Education        string    `gorm:"type:text" json:"education,omitempty"`
	IsPrimary        bool      `gorm:"default:false" json:"is_primary"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// SkillsList splits the comma-joined skills column back into tokens.
func (r *Resume) SkillsList() []string {
	if r.ExtractedSkills == "" {
		return nil
	}
	parts := strings.Split(r.ExtractedSkills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// EducationList splits the comma-joined education column back into tokens.
func (r *Resume) EducationList() []string {
	if r.Education == "" {
		return nil
	}
	parts := strings.Split(r.Education, ",")
	entries := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(p); e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}
