package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
	"talentbridge/jobboard/internal/services"
)

const adminPerPage = 25

type AdminHandler struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	aggRepo         repositories.AggregatedJobRepository
	resumeRepo      repositories.ResumeRepository
	appRepo         repositories.ApplicationRepository
	candidateRepo   repositories.CandidateRepository
	employerRepo    repositories.EmployerRepository
	messageRepo     repositories.MessageRepository
	testimonialRepo repositories.TestimonialRepository
	aggregator      services.JobAggregator
	searchService   services.JobSearchService
}

func NewAdminHandler(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	aggRepo repositories.AggregatedJobRepository,
	resumeRepo repositories.ResumeRepository,
	appRepo repositories.ApplicationRepository,
	candidateRepo repositories.CandidateRepository,
	employerRepo repositories.EmployerRepository,
	messageRepo repositories.MessageRepository,
	testimonialRepo repositories.TestimonialRepository,
	aggregator services.JobAggregator,
	searchService services.JobSearchService,
) *AdminHandler {
	return &AdminHandler{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		aggRepo:         aggRepo,
		resumeRepo:      resumeRepo,
		appRepo:         appRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
		messageRepo:     messageRepo,
		testimonialRepo: testimonialRepo,
		aggregator:      aggregator,
		searchService:   searchService,
	}
}

func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	var stats models.DashboardStats
	var err error

	if stats.Users, err = h.userRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.Jobs, err = h.jobRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.AggregatedJobs, err = h.aggRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.Candidates, err = h.candidateRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.Employers, err = h.employerRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.Resumes, err = h.resumeRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.Applications, err = h.appRepo.Count(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}
	if stats.UnreadMessages, err = h.messageRepo.CountUnread(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load dashboard")
	}

	return c.JSON(stats)
}

func (h *AdminHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Title == "" || req.Company == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title, company and description are required",
		})
	}

	job := models.Job{
		ID:              uuid.New(),
		Title:           req.Title,
		Company:         req.Company,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		SalaryCurrency:  req.SalaryCurrency,
		Location:        req.Location,
		Industry:        req.Industry,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SkillsRequired:  req.SkillsRequired,
		IsFeatured:      req.IsFeatured,
		IsActive:        true,
		ApplyURL:        req.ApplyURL,
	}
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}

	if err := h.jobRepo.Create(&job); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create job")
	}

	if err := h.searchService.IndexJob(c.Context(), &job); err != nil {
		log.Printf("⚠️  Failed to index job %s: %v\n", job.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *AdminHandler) HandleUpdateJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	var req models.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.SalaryCurrency = req.SalaryCurrency
	job.Location = req.Location
	job.Industry = req.Industry
	job.JobType = req.JobType
	job.ExperienceLevel = req.ExperienceLevel
	job.SkillsRequired = req.SkillsRequired
	job.IsFeatured = req.IsFeatured
	job.IsActive = req.IsActive
	job.ApplyURL = req.ApplyURL

	if err := h.jobRepo.Update(job); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update job")
	}

	if err := h.searchService.IndexJob(c.Context(), job); err != nil {
		log.Printf("⚠️  Failed to reindex job %s: %v\n", job.ID, err)
	}

	return c.JSON(job)
}

func (h *AdminHandler) HandleDeleteJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	if err := h.jobRepo.Delete(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	if err := h.searchService.RemoveJob(c.Context(), jobID); err != nil {
		log.Printf("⚠️  Failed to remove job %s from index: %v\n", jobID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Job deleted",
	})
}

// HandleReindexJobs rebuilds the vector index from every active job. No-op
// when vector search is disabled.
func (h *AdminHandler) HandleReindexJobs(c *fiber.Ctx) error {
	if !h.searchService.Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "vector search is not configured",
		})
	}

	jobs, err := h.jobRepo.ListActive()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list jobs")
	}

	indexed := 0
	for i := range jobs {
		if err := h.searchService.IndexJob(c.Context(), &jobs[i]); err != nil {
			log.Printf("⚠️  Failed to index job %s: %v\n", jobs[i].ID, err)
			continue
		}
		indexed++
	}

	return c.JSON(fiber.Map{
		"message": "Reindex complete",
		"indexed": indexed,
		"total":   len(jobs),
	})
}

func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	users, total, err := h.userRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list users")
	}

	return c.JSON(fiber.Map{
		"users": users,
		"page":  page,
		"total": total,
	})
}

// HandleToggleAdmin flips the admin flag on another account. Admins cannot
// demote themselves.
func (h *AdminHandler) HandleToggleAdmin(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid user id",
		})
	}

	if userID == CurrentUserID(c) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cannot change your own admin status",
		})
	}

	user, err := h.userRepo.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "user not found",
		})
	}

	if err := h.userRepo.SetAdmin(userID, !user.IsAdmin); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update user")
	}

	return c.JSON(fiber.Map{
		"message":  "Admin status updated",
		"is_admin": !user.IsAdmin,
	})
}

func (h *AdminHandler) HandleListCandidates(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	candidates, total, err := h.candidateRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list candidates")
	}

	return c.JSON(fiber.Map{
		"candidates": candidates,
		"page":       page,
		"total":      total,
	})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *AdminHandler) HandleUpdateCandidateStatus(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid candidate id",
		})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.candidateRepo.UpdateStatus(candidateID, req.Status, req.Notes); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "candidate not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Candidate status updated",
	})
}

func (h *AdminHandler) HandleListEmployers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	employers, total, err := h.employerRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list employers")
	}

	return c.JSON(fiber.Map{
		"employers": employers,
		"page":      page,
		"total":     total,
	})
}

func (h *AdminHandler) HandleUpdateEmployerStatus(c *fiber.Ctx) error {
	employerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid employer id",
		})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.employerRepo.UpdateStatus(employerID, req.Status, req.Notes); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "employer not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Employer status updated",
	})
}

func (h *AdminHandler) HandleListApplications(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	applications, total, err := h.appRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list applications")
	}

	return c.JSON(fiber.Map{
		"applications": applications,
		"page":         page,
		"total":        total,
	})
}

func (h *AdminHandler) HandleUpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid application id",
		})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "status is required",
		})
	}

	if err := h.appRepo.UpdateStatus(applicationID, req.Status); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "application not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Application status updated",
	})
}

func (h *AdminHandler) HandleListMessages(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	messages, total, err := h.messageRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list messages")
	}

	return c.JSON(fiber.Map{
		"messages": messages,
		"page":     page,
		"total":    total,
	})
}

func (h *AdminHandler) HandleMarkMessageRead(c *fiber.Ctx) error {
	messageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid message id",
		})
	}

	if err := h.messageRepo.MarkRead(messageID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "message not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Message marked as read",
	})
}

func (h *AdminHandler) HandleListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.testimonialRepo.List()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list testimonials")
	}

	return c.JSON(fiber.Map{
		"testimonials": testimonials,
	})
}

type testimonialRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"image_url"`
}

func (h *AdminHandler) HandleCreateTestimonial(c *fiber.Ctx) error {
	var req testimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Name == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name and content are required",
		})
	}
	if req.Rating < 1 || req.Rating > 5 {
		req.Rating = 5
	}

	testimonial := models.Testimonial{
		ID:         uuid.New(),
		Name:       req.Name,
		Position:   req.Position,
		Company:    req.Company,
		Content:    req.Content,
		Rating:     req.Rating,
		ImageURL:   req.ImageURL,
		IsApproved: true,
	}

	if err := h.testimonialRepo.Create(&testimonial); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create testimonial")
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func (h *AdminHandler) HandleToggleTestimonial(c *fiber.Ctx) error {
	testimonialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid testimonial id",
		})
	}

	if err := h.testimonialRepo.ToggleApproval(testimonialID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "testimonial not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Testimonial approval toggled",
	})
}

func (h *AdminHandler) HandleDeleteTestimonial(c *fiber.Ctx) error {
	testimonialID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid testimonial id",
		})
	}

	if err := h.testimonialRepo.Delete(testimonialID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "testimonial not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Testimonial deleted",
	})
}

func (h *AdminHandler) HandleListAggregatedJobs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	jobs, total, err := h.aggRepo.List(page, adminPerPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list aggregated jobs")
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"page":  page,
		"total": total,
	})
}

func (h *AdminHandler) HandleDeactivateAggregatedJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	if err := h.aggRepo.SetActive(jobID, false); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "aggregated job not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Aggregated job deactivated",
	})
}

type aggregationRequest struct {
	Keywords  []string `json:"keywords"`
	Locations []string `json:"locations"`
}

// HandleRunAggregation triggers one aggregation pass synchronously.
func (h *AdminHandler) HandleRunAggregation(c *fiber.Ctx) error {
	var req aggregationRequest
	if err := c.BodyParser(&req); err != nil {
		// Empty body runs with the default keyword/location grid.
		req = aggregationRequest{}
	}

	added, err := h.aggregator.RunAggregation(req.Keywords, req.Locations)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "aggregation failed")
	}

	return c.JSON(fiber.Map{
		"message": "Aggregation complete",
		"added":   added,
	})
}
