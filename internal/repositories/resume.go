package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByIDForUser(id, userID uuid.UUID) (*models.Resume, error)
	ListByUser(userID uuid.UUID) ([]models.Resume, error)
	PrimaryForUser(userID uuid.UUID) (*models.Resume, error)
	ClearPrimary(userID uuid.UUID) error
	SetPrimary(id, userID uuid.UUID) error
	Delete(id, userID uuid.UUID) error
	Count() (int64, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// FindByIDForUser implements ResumeRepository. Scoped to the owner so one
// user can never read another's resume.
func (r *resumeRepository) FindByIDForUser(id, userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resume not found")
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

// ListByUser implements ResumeRepository.
func (r *resumeRepository) ListByUser(userID uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Order("upload_date DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// PrimaryForUser implements ResumeRepository. Falls back to the most recent
// upload when no resume is marked primary.
func (r *resumeRepository) PrimaryForUser(userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := r.db.
		Where("user_id = ? AND is_primary = ?", userID, true).
		First(&resume).Error
	if err == nil {
		return &resume, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to find primary resume: %w", err)
	}

	err = r.db.
		Where("user_id = ?", userID).
		Order("upload_date DESC").
		First(&resume).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no resume uploaded")
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

// ClearPrimary implements ResumeRepository.
func (r *resumeRepository) ClearPrimary(userID uuid.UUID) error {
	err := r.db.Model(&models.Resume{}).
		Where("user_id = ? AND is_primary = ?", userID, true).
		Update("is_primary", false).Error
	if err != nil {
		return fmt.Errorf("failed to clear primary resume: %w", err)
	}
	return nil
}

// SetPrimary implements ResumeRepository.
func (r *resumeRepository) SetPrimary(id, userID uuid.UUID) error {
	if err := r.ClearPrimary(userID); err != nil {
		return err
	}

	result := r.db.Model(&models.Resume{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_primary", true)
	if result.Error != nil {
		return fmt.Errorf("failed to set primary resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("resume not found")
	}
	return nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Delete(&models.Resume{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("resume not found")
	}
	return nil
}

// Count implements ResumeRepository.
func (r *resumeRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Resume{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}
	return count, nil
}
