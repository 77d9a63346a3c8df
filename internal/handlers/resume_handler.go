package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
	"talentbridge/jobboard/internal/services"
)

// recommendResumeTextLimit caps how much parsed resume text is handed to the
// AI recommender alongside the matched-jobs summary.
const recommendResumeTextLimit = 1500

type ResumeHandler struct {
	resumeRepo     repositories.ResumeRepository
	jobRepo        repositories.JobRepository
	storageService services.StorageService
	parser         services.ResumeParser
	matcher        services.JobMatcher
	augmenter      services.Augmenter
	maxFileSize    int64
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobRepository,
	storageService services.StorageService,
	parser services.ResumeParser,
	matcher services.JobMatcher,
	augmenter services.Augmenter,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:     resumeRepo,
		jobRepo:        jobRepo,
		storageService: storageService,
		parser:         parser,
		matcher:        matcher,
		augmenter:      augmenter,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload stores the file, runs the parsing pipeline, and persists the
// extracted attributes. A document that yields no text is rejected and its
// file removed.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	userID := CurrentUserID(c)

	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no resume file provided",
		})
	}

	if !h.storageService.IsAllowedFile(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid file type. Please upload a PDF or DOCX file",
		})
	}
	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Maximum size is %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save file")
	}

	result := h.parser.ParseResume(filePath)
	if !result.Success {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to remove unparseable upload %s: %v\n", filename, err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": result.Error,
		})
	}

	// AI enrichment adds skills the vocabulary missed; a no-op when the
	// augmenter is disabled.
	skills := mergeSkills(result.Skills, h.augmenter.EnhanceSkills(c.Context(), result.Text))

	existing, err := h.resumeRepo.ListByUser(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list resumes")
	}

	resume := models.Resume{
		ID:              uuid.New(),
		UserID:          userID,
		Filename:        file.Filename,
		FilePath:        filename,
		ParsedText:      result.Text,
		ExtractedSkills: strings.Join(skills, ","),
		ExperienceYears: result.ExperienceYears,
		Education:       strings.Join(result.Education, ","),
		IsPrimary:       len(existing) == 0,
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		if derr := h.storageService.DeleteFile(filename); derr != nil {
			log.Printf("⚠️  Failed to remove orphaned upload %s: %v\n", filename, derr)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save resume")
	}

	log.Printf("✅ Resume %s parsed: %d skills, %d education entries\n",
		resume.ID, len(skills), len(result.Education))

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:              resume.ID.String(),
		Filename:        resume.Filename,
		Skills:          skills,
		Email:           result.Email,
		Phone:           result.Phone,
		ExperienceYears: result.ExperienceYears,
		Education:       result.Education,
		IsPrimary:       resume.IsPrimary,
	})
}

func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	resumes, err := h.resumeRepo.ListByUser(CurrentUserID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list resumes")
	}

	return c.JSON(fiber.Map{
		"resumes": resumes,
	})
}

func (h *ResumeHandler) HandleSetPrimary(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume id",
		})
	}

	if err := h.resumeRepo.SetPrimary(resumeID, CurrentUserID(c)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resume not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Primary resume updated",
	})
}

func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	userID := CurrentUserID(c)

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume id",
		})
	}

	resume, err := h.resumeRepo.FindByIDForUser(resumeID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resume not found",
		})
	}

	if err := h.resumeRepo.Delete(resumeID, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete resume")
	}

	if err := h.storageService.DeleteFile(resume.FilePath); err != nil {
		log.Printf("⚠️  Failed to remove resume file %s: %v\n", resume.FilePath, err)
	}

	return c.JSON(fiber.Map{
		"message": "Resume deleted",
	})
}

func (h *ResumeHandler) HandleDownload(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume id",
		})
	}

	resume, err := h.resumeRepo.FindByIDForUser(resumeID, CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resume not found",
		})
	}

	return c.Download(h.storageService.GetFilePath(resume.FilePath), resume.Filename)
}

// HandleAnalysis returns the stored attributes of one resume along with its
// top matches against the active job listings.
func (h *ResumeHandler) HandleAnalysis(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid resume id",
		})
	}

	resume, err := h.resumeRepo.FindByIDForUser(resumeID, CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "resume not found",
		})
	}

	jobs, err := h.jobRepo.ListActive()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list jobs")
	}

	matched := h.matcher.MatchJobs(resume, jobs, 0)

	return c.JSON(fiber.Map{
		"resume_id":        resume.ID.String(),
		"filename":         resume.Filename,
		"skills":           resume.SkillsList(),
		"experience_years": resume.ExperienceYears,
		"education":        resume.EducationList(),
		"matched_jobs":     matchedJobResponses(matched),
	})
}

// HandleRecommended scores the user's primary resume against every active
// job and layers AI recommendations on top when the augmenter is configured.
func (h *ResumeHandler) HandleRecommended(c *fiber.Ctx) error {
	resume, err := h.resumeRepo.PrimaryForUser(CurrentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "please upload a resume first",
		})
	}

	jobs, err := h.jobRepo.ListActive()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to list jobs")
	}

	matched := h.matcher.MatchJobs(resume, jobs, 0)

	var summary strings.Builder
	for i, m := range matched {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&summary, "- %s at %s\n", m.Job.Title, m.Job.Company)
	}

	resumeText := resume.ParsedText
	if len(resumeText) > recommendResumeTextLimit {
		resumeText = resumeText[:recommendResumeTextLimit]
	}
	recommendations := h.augmenter.RecommendJobs(c.Context(), resumeText, summary.String())

	return c.JSON(models.RecommendedResponse{
		ResumeID:          resume.ID.String(),
		Skills:            resume.SkillsList(),
		MatchedJobs:       matchedJobResponses(matched),
		AIRecommendations: recommendations,
	})
}

// mergeSkills appends AI-found skills not already in the extracted set.
func mergeSkills(extracted, enhanced []string) []string {
	seen := make(map[string]struct{}, len(extracted))
	for _, s := range extracted {
		seen[s] = struct{}{}
	}

	merged := extracted
	for _, s := range enhanced {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}
	return merged
}

func matchedJobResponses(matched []services.MatchedJob) []models.MatchedJobResponse {
	responses := make([]models.MatchedJobResponse, 0, len(matched))
	for _, m := range matched {
		responses = append(responses, models.MatchedJobResponse{
			Job:             m.Job,
			OverallScore:    m.Match.OverallScore,
			SkillMatch:      m.Match.SkillMatch,
			TitleMatch:      m.Match.TitleMatch,
			ExperienceMatch: m.Match.ExperienceMatch,
		})
	}
	return responses
}
