package services

import (
	"context"
	"log"
	"strings"
)

const (
	// Fallbacks surfaced in place of AI output; never an error.
	augmenterDisabledMessage = "AI recommendations unavailable. Please configure your Gemini API key."
	augmenterFailureMessage  = "Unable to generate recommendations at this time."

	enhanceSkillsTextLimit = 4000
	recommendTextLimit     = 2000
	recommendJobsLimit     = 2000
	enhanceSkillsMaxTokens = 500
	recommendMaxTokens     = 400
	enhanceSkillsTemp      = 0.3
	recommendTemp          = 0.7
)

// Augmenter is the optional AI enrichment capability. The variant is picked
// once at startup; callers never check credential presence.
type Augmenter interface {
	EnhanceSkills(ctx context.Context, resumeText string) []string
	RecommendJobs(ctx context.Context, resumeText, jobsSummary string) string
}

// NewAugmenter returns the Gemini-backed augmenter when an API key is
// configured, otherwise the disabled variant.
func NewAugmenter(apiKey string) Augmenter {
	if apiKey == "" {
		log.Println("⚠️  No Gemini API key configured. AI augmenter disabled.")
		return &disabledAugmenter{}
	}

	gemini, err := NewGeminiService(apiKey)
	if err != nil {
		log.Printf("⚠️  Failed to initialize Gemini client: %v. AI augmenter disabled.\n", err)
		return &disabledAugmenter{}
	}

	return &geminiAugmenter{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

type geminiAugmenter struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

// EnhanceSkills implements Augmenter. Returns an empty list on any failure.
func (a *geminiAugmenter) EnhanceSkills(ctx context.Context, resumeText string) []string {
	prompt := a.prompts.BuildSkillExtractionPrompt(truncate(resumeText, enhanceSkillsTextLimit))

	response, err := a.gemini.GenerateText(ctx, prompt, enhanceSkillsTemp, enhanceSkillsMaxTokens)
	if err != nil {
		log.Printf("❌ Error enhancing skills with AI: %v\n", err)
		return nil
	}

	var skills []string
	for _, part := range strings.Split(response, ",") {
		if skill := strings.ToLower(strings.TrimSpace(part)); skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills
}

// RecommendJobs implements Augmenter. Any failure maps to the fixed
// fallback sentence.
func (a *geminiAugmenter) RecommendJobs(ctx context.Context, resumeText, jobsSummary string) string {
	prompt := a.prompts.BuildRecommendationPrompt(
		truncate(resumeText, recommendTextLimit),
		truncate(jobsSummary, recommendJobsLimit),
	)

	response, err := a.gemini.GenerateText(ctx, prompt, recommendTemp, recommendMaxTokens)
	if err != nil {
		log.Printf("❌ Error getting AI recommendations: %v\n", err)
		return augmenterFailureMessage
	}

	return response
}

type disabledAugmenter struct{}

// EnhanceSkills implements Augmenter.
func (a *disabledAugmenter) EnhanceSkills(ctx context.Context, resumeText string) []string {
	log.Println("⚠️  AI augmenter not configured. Skipping skill enhancement.")
	return nil
}

// RecommendJobs implements Augmenter.
func (a *disabledAugmenter) RecommendJobs(ctx context.Context, resumeText, jobsSummary string) string {
	return augmenterDisabledMessage
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
