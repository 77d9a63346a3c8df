package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSkillExtractionPrompt creates the prompt for AI skill enrichment.
// The response contract is a bare comma-separated list.
func (pb *PromptBuilder) BuildSkillExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume analyzer. Extract all technical and professional skills from the given resume text. Return only a comma-separated list of skills, nothing else.

Extract all skills from this resume:

%s`, resumeText)
}

// BuildRecommendationPrompt creates the prompt for career recommendations.
func (pb *PromptBuilder) BuildRecommendationPrompt(resumeText, jobsSummary string) string {
	return fmt.Sprintf(`You are a career advisor. Based on the candidate's resume and available jobs, provide brief personalized recommendations for their job search. Be concise and actionable.

Resume Summary:
%s

Available Jobs:
%s

Provide 3-4 specific recommendations.`, resumeText, jobsSummary)
}
