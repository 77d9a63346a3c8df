package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

type AggregatedJobRepository interface {
	Upsert(job *models.AggregatedJob) (bool, error)
	ListActive(keyword, location string, limit int) ([]models.AggregatedJob, error)
	List(page, perPage int) ([]models.AggregatedJob, int64, error)
	SetActive(id uuid.UUID, isActive bool) error
	Count() (int64, error)
}

type aggregatedJobRepository struct {
	db *gorm.DB
}

func NewAggregatedJobRepository(db *gorm.DB) AggregatedJobRepository {
	return &aggregatedJobRepository{db: db}
}

// Upsert implements AggregatedJobRepository. Keyed by (platform,
// external_id); reports whether a new row was created.
func (r *aggregatedJobRepository) Upsert(job *models.AggregatedJob) (bool, error) {
	var existing models.AggregatedJob
	err := r.db.
		Where("source_platform = ? AND external_id = ?", job.SourcePlatform, job.ExternalID).
		First(&existing).Error

	if err == gorm.ErrRecordNotFound {
		if err := r.db.Create(job).Error; err != nil {
			return false, fmt.Errorf("failed to create aggregated job: %w", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up aggregated job: %w", err)
	}

	updates := map[string]interface{}{
		"title":       job.Title,
		"company":     job.Company,
		"description": job.Description,
		"location":    job.Location,
		"salary_info": job.SalaryInfo,
		"job_type":    job.JobType,
		"url":         job.URL,
		"scraped_at":  time.Now(),
		"is_active":   true,
	}
	err = r.db.Model(&models.AggregatedJob{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
	if err != nil {
		return false, fmt.Errorf("failed to update aggregated job: %w", err)
	}

	return false, nil
}

// ListActive implements AggregatedJobRepository.
func (r *aggregatedJobRepository) ListActive(keyword, location string, limit int) ([]models.AggregatedJob, error) {
	query := r.db.Model(&models.AggregatedJob{}).Where("is_active = ?", true)

	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(
			"title ILIKE ? OR company ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	var jobs []models.AggregatedJob
	err := query.
		Order("scraped_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list aggregated jobs: %w", err)
	}
	return jobs, nil
}

// List implements AggregatedJobRepository.
func (r *aggregatedJobRepository) List(page, perPage int) ([]models.AggregatedJob, int64, error) {
	var jobs []models.AggregatedJob
	var total int64

	if err := r.db.Model(&models.AggregatedJob{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count aggregated jobs: %w", err)
	}

	err := r.db.
		Order("scraped_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list aggregated jobs: %w", err)
	}

	return jobs, total, nil
}

// SetActive implements AggregatedJobRepository.
func (r *aggregatedJobRepository) SetActive(id uuid.UUID, isActive bool) error {
	result := r.db.Model(&models.AggregatedJob{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	if result.Error != nil {
		return fmt.Errorf("failed to update aggregated job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("aggregated job not found")
	}
	return nil
}

// Count implements AggregatedJobRepository.
func (r *aggregatedJobRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.AggregatedJob{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count aggregated jobs: %w", err)
	}
	return count, nil
}
