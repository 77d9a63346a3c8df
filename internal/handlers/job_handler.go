package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
	"talentbridge/jobboard/internal/services"
)

type JobHandler struct {
	jobRepo       repositories.JobRepository
	aggRepo       repositories.AggregatedJobRepository
	userRepo      repositories.UserRepository
	appRepo       repositories.ApplicationRepository
	resumeRepo    repositories.ResumeRepository
	searchService services.JobSearchService
	authHandler   *AuthHandler
	perPage       int
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	aggRepo repositories.AggregatedJobRepository,
	userRepo repositories.UserRepository,
	appRepo repositories.ApplicationRepository,
	resumeRepo repositories.ResumeRepository,
	searchService services.JobSearchService,
	authHandler *AuthHandler,
	perPage int,
) *JobHandler {
	return &JobHandler{
		jobRepo:       jobRepo,
		aggRepo:       aggRepo,
		userRepo:      userRepo,
		appRepo:       appRepo,
		resumeRepo:    resumeRepo,
		searchService: searchService,
		authHandler:   authHandler,
		perPage:       perPage,
	}
}

func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	filters := repositories.JobFilters{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Industry: c.Query("industry"),
		JobType:  c.Query("job_type"),
	}

	jobs, total, err := h.jobRepo.List(filters, page, h.perPage)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list jobs")
	}

	aggregated, err := h.aggRepo.ListActive(filters.Keyword, filters.Location, 20)
	if err != nil {
		log.Printf("⚠️  Failed to list aggregated jobs: %v\n", err)
	}

	industries, err := h.jobRepo.Industries()
	if err != nil {
		log.Printf("⚠️  Failed to list industries: %v\n", err)
	}
	jobTypes, err := h.jobRepo.JobTypes()
	if err != nil {
		log.Printf("⚠️  Failed to list job types: %v\n", err)
	}

	return c.JSON(models.JobListResponse{
		Jobs:           jobs,
		AggregatedJobs: aggregated,
		Page:           page,
		PerPage:        h.perPage,
		Total:          total,
		Industries:     industries,
		JobTypes:       jobTypes,
	})
}

func (h *JobHandler) HandleDetail(c *fiber.Ctx) error {
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

	isSaved := false
	hasApplied := false
	if userID, ok := h.authHandler.OptionalUserID(c); ok {
		if saved, err := h.userRepo.IsJobSaved(userID, jobID); err == nil {
			isSaved = saved
		}
		if applied, err := h.appRepo.HasApplied(userID, jobID); err == nil {
			hasApplied = applied
		}
	}

	similar := h.similarJobs(c, job)

	return c.JSON(fiber.Map{
		"job":            job,
		"salary_display": job.SalaryDisplay(),
		"is_saved":       isSaved,
		"has_applied":    hasApplied,
		"similar_jobs":   similar,
	})
}

// similarJobs prefers the vector index; falls back to the SQL
// industry/job-type filter when the index is disabled or errors out.
func (h *JobHandler) similarJobs(c *fiber.Ctx, job *models.Job) []models.Job {
	const similarLimit = 4

	if h.searchService.Enabled() {
		ids, err := h.searchService.SimilarJobs(c.Context(), job, similarLimit)
		if err != nil {
			log.Printf("⚠️  Vector similar-jobs lookup failed: %v\n", err)
		} else if len(ids) > 0 {
			jobs, err := h.jobRepo.FindByIDs(ids)
			if err == nil {
				return jobs
			}
			log.Printf("⚠️  Failed to load similar jobs: %v\n", err)
		}
	}

	similar, err := h.jobRepo.Similar(job, similarLimit)
	if err != nil {
		log.Printf("⚠️  Failed to find similar jobs: %v\n", err)
		return nil
	}
	return similar
}

func (h *JobHandler) HandleToggleSave(c *fiber.Ctx) error {
	userID := CurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	saved, err := h.userRepo.IsJobSaved(userID, jobID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check saved job")
	}

	if saved {
		if err := h.userRepo.UnsaveJob(userID, jobID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to unsave job")
		}
		return c.JSON(fiber.Map{
			"message": "Job removed from saved jobs.",
			"saved":   false,
		})
	}

	if err := h.userRepo.SaveJob(userID, jobID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save job")
	}
	return c.JSON(fiber.Map{
		"message": "Job saved successfully!",
		"saved":   true,
	})
}

func (h *JobHandler) HandleApply(c *fiber.Ctx) error {
	userID := CurrentUserID(c)

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job id",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}

	applied, err := h.appRepo.HasApplied(userID, jobID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check application")
	}
	if applied {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "you have already applied to this job",
		})
	}

	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	application := models.JobApplication{
		ID:          uuid.New(),
		UserID:      userID,
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
		Status:      "submitted",
	}

	if req.ResumeID != "" {
		resumeID, err := uuid.Parse(req.ResumeID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid resume id",
			})
		}
		if _, err := h.resumeRepo.FindByIDForUser(resumeID, userID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "resume not found",
			})
		}
		application.ResumeID = &resumeID
	}

	if err := h.appRepo.Create(&application); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully!",
		"application": application,
	})
}

func (h *JobHandler) HandleMyApplications(c *fiber.Ctx) error {
	applications, err := h.appRepo.ListByUser(CurrentUserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list applications")
	}

	return c.JSON(fiber.Map{
		"applications": applications,
	})
}
