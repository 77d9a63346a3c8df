package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

// JobFilters narrows the public job listing.
type JobFilters struct {
	Keyword  string
	Location string
	Industry string
	JobType  string
}

type JobRepository interface {
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindByIDs(ids []uuid.UUID) ([]models.Job, error)
	List(filters JobFilters, page, perPage int) ([]models.Job, int64, error)
	ListActive() ([]models.Job, error)
	Similar(job *models.Job, limit int) ([]models.Job, error)
	Featured(limit int) ([]models.Job, error)
	Industries() ([]string, error)
	JobTypes() ([]string, error)
	Count() (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Update implements JobRepository.
func (r *jobRepository) Update(job *models.Job) error {
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}
	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindByIDs implements JobRepository. Preserves the order of ids.
func (r *jobRepository) FindByIDs(ids []uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}

	byID := make(map[uuid.UUID]models.Job, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
	}

	ordered := make([]models.Job, 0, len(ids))
	for _, id := range ids {
		if job, ok := byID[id]; ok {
			ordered = append(ordered, job)
		}
	}
	return ordered, nil
}

// List implements JobRepository.
func (r *jobRepository) List(filters JobFilters, page, perPage int) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("is_active = ?", true)

	if filters.Keyword != "" {
		pattern := "%" + filters.Keyword + "%"
		query = query.Where(
			"title ILIKE ? OR company ILIKE ? OR description ILIKE ? OR skills_required ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filters.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filters.Location+"%")
	}
	if filters.Industry != "" {
		query = query.Where("industry = ?", filters.Industry)
	}
	if filters.JobType != "" {
		query = query.Where("job_type = ?", filters.JobType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	var jobs []models.Job
	err := query.
		Order("posted_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, total, nil
}

// ListActive implements JobRepository.
func (r *jobRepository) ListActive() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("is_active = ?", true).
		Order("posted_date DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	return jobs, nil
}

// Similar implements JobRepository. Same industry or job type, excluding
// the job itself.
func (r *jobRepository) Similar(job *models.Job, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("id != ? AND is_active = ?", job.ID, true).
		Where("industry = ? OR job_type = ?", job.Industry, job.JobType).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find similar jobs: %w", err)
	}
	return jobs, nil
}

// Featured implements JobRepository.
func (r *jobRepository) Featured(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("posted_date DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured jobs: %w", err)
	}
	return jobs, nil
}

// Industries implements JobRepository.
func (r *jobRepository) Industries() ([]string, error) {
	var industries []string
	err := r.db.Model(&models.Job{}).
		Where("industry IS NOT NULL AND industry != ''").
		Distinct().
		Pluck("industry", &industries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list industries: %w", err)
	}
	return industries, nil
}

// JobTypes implements JobRepository.
func (r *jobRepository) JobTypes() ([]string, error) {
	var jobTypes []string
	err := r.db.Model(&models.Job{}).
		Where("job_type IS NOT NULL AND job_type != ''").
		Distinct().
		Pluck("job_type", &jobTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job types: %w", err)
	}
	return jobTypes, nil
}

// Count implements JobRepository.
func (r *jobRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
