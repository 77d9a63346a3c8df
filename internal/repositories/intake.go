package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentbridge/jobboard/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	List(page, perPage int) ([]models.Candidate, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
	Count() (int64, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// List implements CandidateRepository.
func (r *candidateRepository) List(page, perPage int) ([]models.Candidate, int64, error) {
	var candidates []models.Candidate
	var total int64

	if err := r.db.Model(&models.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	err := r.db.
		Order("submitted_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&candidates).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, total, nil
}

// UpdateStatus implements CandidateRepository.
func (r *candidateRepository) UpdateStatus(id uuid.UUID, status, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}

// Count implements CandidateRepository.
func (r *candidateRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

type EmployerRepository interface {
	Create(employer *models.Employer) error
	FindByID(id uuid.UUID) (*models.Employer, error)
	List(page, perPage int) ([]models.Employer, int64, error)
	UpdateStatus(id uuid.UUID, status, notes string) error
	Count() (int64, error)
}

type employerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

// Create implements EmployerRepository.
func (r *employerRepository) Create(employer *models.Employer) error {
	if err := r.db.Create(employer).Error; err != nil {
		return fmt.Errorf("failed to create employer: %w", err)
	}
	return nil
}

// FindByID implements EmployerRepository.
func (r *employerRepository) FindByID(id uuid.UUID) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.Where("id = ?", id).First(&employer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employer not found")
		}
		return nil, fmt.Errorf("failed to find employer: %w", err)
	}
	return &employer, nil
}

// List implements EmployerRepository.
func (r *employerRepository) List(page, perPage int) ([]models.Employer, int64, error) {
	var employers []models.Employer
	var total int64

	if err := r.db.Model(&models.Employer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count employers: %w", err)
	}

	err := r.db.
		Order("submitted_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&employers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employers: %w", err)
	}

	return employers, total, nil
}

// UpdateStatus implements EmployerRepository.
func (r *employerRepository) UpdateStatus(id uuid.UUID, status, notes string) error {
	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.db.Model(&models.Employer{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update employer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("employer not found")
	}
	return nil
}

// Count implements EmployerRepository.
func (r *employerRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Employer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employers: %w", err)
	}
	return count, nil
}

type MessageRepository interface {
	Create(message *models.Message) error
	List(page, perPage int) ([]models.Message, int64, error)
	MarkRead(id uuid.UUID) error
	CountUnread() (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create implements MessageRepository.
func (r *messageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// List implements MessageRepository.
func (r *messageRepository) List(page, perPage int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	if err := r.db.Model(&models.Message{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	err := r.db.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, total, nil
}

// MarkRead implements MessageRepository.
func (r *messageRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark message read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message not found")
	}
	return nil
}

// CountUnread implements MessageRepository.
func (r *messageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

type TestimonialRepository interface {
	Create(testimonial *models.Testimonial) error
	List() ([]models.Testimonial, error)
	ListApproved(limit int) ([]models.Testimonial, error)
	ToggleApproval(id uuid.UUID) error
	Delete(id uuid.UUID) error
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

// Create implements TestimonialRepository.
func (r *testimonialRepository) Create(testimonial *models.Testimonial) error {
	if err := r.db.Create(testimonial).Error; err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// List implements TestimonialRepository.
func (r *testimonialRepository) List() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

// ListApproved implements TestimonialRepository.
func (r *testimonialRepository) ListApproved(limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&testimonials).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved testimonials: %w", err)
	}
	return testimonials, nil
}

// ToggleApproval implements TestimonialRepository.
func (r *testimonialRepository) ToggleApproval(id uuid.UUID) error {
	result := r.db.Model(&models.Testimonial{}).
		Where("id = ?", id).
		Update("is_approved", gorm.Expr("NOT is_approved"))
	if result.Error != nil {
		return fmt.Errorf("failed to toggle testimonial approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("testimonial not found")
	}
	return nil
}

// Delete implements TestimonialRepository.
func (r *testimonialRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Testimonial{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete testimonial: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("testimonial not found")
	}
	return nil
}
