package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	TouchLastLogin(id uuid.UUID) error
	List(page, perPage int) ([]models.User, int64, error)
	SetAdmin(id uuid.UUID, isAdmin bool) error
	Count() (int64, error)
	SaveJob(userID, jobID uuid.UUID) error
	UnsaveJob(userID, jobID uuid.UUID) error
	IsJobSaved(userID, jobID uuid.UUID) (bool, error)
	SavedJobs(userID uuid.UUID) ([]models.Job, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindByEmail implements UserRepository.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// Update implements UserRepository.
func (r *userRepository) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// TouchLastLogin implements UserRepository.
func (r *userRepository) TouchLastLogin(id uuid.UUID) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now())

	if result.Error != nil {
		return fmt.Errorf("failed to update last login: %w", result.Error)
	}
	return nil
}

// List implements UserRepository.
func (r *userRepository) List(page, perPage int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// SetAdmin implements UserRepository.
func (r *userRepository) SetAdmin(id uuid.UUID, isAdmin bool) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Update("is_admin", isAdmin)

	if result.Error != nil {
		return fmt.Errorf("failed to update admin flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// Count implements UserRepository.
func (r *userRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// SaveJob implements UserRepository.
func (r *userRepository) SaveJob(userID, jobID uuid.UUID) error {
	user := models.User{ID: userID}
	job := models.Job{ID: jobID}
	if err := r.db.Model(&user).Association("SavedJobs").Append(&job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

// UnsaveJob implements UserRepository.
func (r *userRepository) UnsaveJob(userID, jobID uuid.UUID) error {
	user := models.User{ID: userID}
	job := models.Job{ID: jobID}
	if err := r.db.Model(&user).Association("SavedJobs").Delete(&job); err != nil {
		return fmt.Errorf("failed to unsave job: %w", err)
	}
	return nil
}

// IsJobSaved implements UserRepository.
func (r *userRepository) IsJobSaved(userID, jobID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Table("saved_jobs").
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved job: %w", err)
	}
	return count > 0, nil
}

// SavedJobs implements UserRepository.
func (r *userRepository) SavedJobs(userID uuid.UUID) ([]models.Job, error) {
	user := models.User{ID: userID}
	var jobs []models.Job
	if err := r.db.Model(&user).Association("SavedJobs").Find(&jobs); err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}
	return jobs, nil
}
