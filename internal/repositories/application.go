package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

type ApplicationRepository interface {
	Create(application *models.JobApplication) error
	HasApplied(userID, jobID uuid.UUID) (bool, error)
	ListByUser(userID uuid.UUID) ([]models.JobApplication, error)
	List(page, perPage int) ([]models.JobApplication, int64, error)
	UpdateStatus(id uuid.UUID, status string) error
	Count() (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(application *models.JobApplication) error {
	if err := r.db.Create(application).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// HasApplied implements ApplicationRepository.
func (r *applicationRepository) HasApplied(userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check application: %w", err)
	}
	return count > 0, nil
}

// ListByUser implements ApplicationRepository.
func (r *applicationRepository) ListByUser(userID uuid.UUID) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := r.db.
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

// List implements ApplicationRepository.
func (r *applicationRepository) List(page, perPage int) ([]models.JobApplication, int64, error) {
	var applications []models.JobApplication
	var total int64

	if err := r.db.Model(&models.JobApplication{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	err := r.db.
		Order("applied_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&applications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}

	return applications, total, nil
}

// UpdateStatus implements ApplicationRepository.
func (r *applicationRepository) UpdateStatus(id uuid.UUID, status string) error {
	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("application not found")
	}
	return nil
}

// Count implements ApplicationRepository.
func (r *applicationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.JobApplication{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}
