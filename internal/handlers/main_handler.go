package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
)

const (
	featuredJobsLimit     = 6
	homeTestimonialsLimit = 3
)

// MainHandler serves the public pages: home page data, intake forms, and
// approved testimonials.
type MainHandler struct {
	jobRepo         repositories.JobRepository
	candidateRepo   repositories.CandidateRepository
	employerRepo    repositories.EmployerRepository
	messageRepo     repositories.MessageRepository
	testimonialRepo repositories.TestimonialRepository
}

func NewMainHandler(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	employerRepo repositories.EmployerRepository,
	messageRepo repositories.MessageRepository,
	testimonialRepo repositories.TestimonialRepository,
) *MainHandler {
	return &MainHandler{
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
		messageRepo:     messageRepo,
		testimonialRepo: testimonialRepo,
	}
}

func (h *MainHandler) HandleHome(c *fiber.Ctx) error {
	featured, err := h.jobRepo.Featured(featuredJobsLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load home page")
	}

	testimonials, err := h.testimonialRepo.ListApproved(homeTestimonialsLimit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load home page")
	}

	return c.JSON(fiber.Map{
		"featured_jobs": featured,
		"testimonials":  testimonials,
	})
}

func (h *MainHandler) HandleTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.testimonialRepo.ListApproved(50)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list testimonials")
	}

	return c.JSON(fiber.Map{
		"testimonials": testimonials,
	})
}

type candidateIntakeRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Skills          string `json:"skills"`
	ExperienceYears *int   `json:"experience_years"`
	CurrentRole     string `json:"current_role"`
	ExpectedSalary  string `json:"expected_salary"`
}

func (h *MainHandler) HandleCandidateIntake(c *fiber.Ctx) error {
	var req candidateIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and email are required",
		})
	}

	candidate := models.Candidate{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		CurrentRole:     req.CurrentRole,
		ExpectedSalary:  req.ExpectedSalary,
		Status:          "new",
	}

	if err := h.candidateRepo.Create(&candidate); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to submit candidate profile")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you! Our team will review your profile and get in touch.",
		"id":      candidate.ID,
	})
}

type employerIntakeRequest struct {
	CompanyName    string `json:"company_name"`
	ContactName    string `json:"contact_name"`
	ContactEmail   string `json:"contact_email"`
	Phone          string `json:"phone"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"company_size"`
	HiringNeeds    string `json:"hiring_needs"`
	PositionsCount int    `json:"positions_count"`
	BudgetRange    string `json:"budget_range"`
	Timeline       string `json:"timeline"`
}

func (h *MainHandler) HandleEmployerIntake(c *fiber.Ctx) error {
	var req employerIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req.ContactEmail = strings.ToLower(strings.TrimSpace(req.ContactEmail))
	if req.CompanyName == "" || req.ContactName == "" || req.ContactEmail == "" || req.HiringNeeds == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "company_name, contact_name, contact_email and hiring_needs are required",
		})
	}

	employer := models.Employer{
		ID:             uuid.New(),
		CompanyName:    req.CompanyName,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		Phone:          req.Phone,
		Industry:       req.Industry,
		CompanySize:    req.CompanySize,
		HiringNeeds:    req.HiringNeeds,
		PositionsCount: req.PositionsCount,
		BudgetRange:    req.BudgetRange,
		Timeline:       req.Timeline,
		Status:         "pending",
	}

	if err := h.employerRepo.Create(&employer); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to submit hiring request")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thank you! We will reach out to discuss your hiring needs.",
		"id":      employer.ID,
	})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *MainHandler) HandleContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, email, subject and message are required",
		})
	}

	message := models.Message{
		ID:      uuid.New(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.messageRepo.Create(&message); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent. We will get back to you soon.",
	})
}
