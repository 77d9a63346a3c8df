package services

import (
	"sort"
	"strconv"
	"strings"
)

// ParseResult carries the attributes extracted from one uploaded resume.
// Success is false when the document yielded no text at all; no entity
// extraction runs in that case.
type ParseResult struct {
	Success         bool
	Error           string
	Text            string
	Skills          []string
	Email           string
	Phone           string
	ExperienceYears *int
	Education       []string
}

type ResumeParser interface {
	ParseResume(filePath string) *ParseResult
	ExtractSkills(text string) []string
	ExtractEmail(text string) string
	ExtractPhone(text string) string
	ExtractExperienceYears(text string) *int
	ExtractEducation(text string) []string
}

type resumeParser struct {
	extractor TextExtractor
	vocab     *Vocabulary
}

func NewResumeParser(extractor TextExtractor, vocab *Vocabulary) ResumeParser {
	return &resumeParser{
		extractor: extractor,
		vocab:     vocab,
	}
}

// ParseResume implements ResumeParser.
func (p *resumeParser) ParseResume(filePath string) *ParseResult {
	text := p.extractor.ExtractText(filePath)

	if text == "" {
		return &ParseResult{
			Success: false,
			Error:   "Could not extract text from resume",
		}
	}

	return &ParseResult{
		Success:         true,
		Text:            text,
		Skills:          p.ExtractSkills(text),
		Email:           p.ExtractEmail(text),
		Phone:           p.ExtractPhone(text),
		ExperienceYears: p.ExtractExperienceYears(text),
		Education:       p.ExtractEducation(text),
	}
}

// ExtractSkills implements ResumeParser. The result is the sorted,
// deduplicated, lower-cased set of vocabulary phrases found in the text.
func (p *resumeParser) ExtractSkills(text string) []string {
	matches := p.vocab.skillPattern.FindAllString(strings.ToLower(text), -1)

	found := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		found[strings.ToLower(m)] = struct{}{}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills
}

// ExtractEmail implements ResumeParser.
func (p *resumeParser) ExtractEmail(text string) string {
	return p.vocab.emailPattern.FindString(text)
}

// ExtractPhone implements ResumeParser. Patterns are tried in priority
// order; the first one that matches anywhere in the text wins.
func (p *resumeParser) ExtractPhone(text string) string {
	for _, pattern := range p.vocab.phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return ""
}

// ExtractExperienceYears implements ResumeParser. Each pattern contributes
// at most its first match; a captured value outside (0, 50) falls through to
// the next pattern.
func (p *resumeParser) ExtractExperienceYears(text string) *int {
	for _, pattern := range p.vocab.experiencePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if years > 0 && years < 50 {
			return &years
		}
	}
	return nil
}

// ExtractEducation implements ResumeParser. Records the exact matched
// substring for every degree pattern found, deduplicated.
func (p *resumeParser) ExtractEducation(text string) []string {
	seen := make(map[string]struct{})
	var education []string

	for _, pattern := range p.vocab.educationPatterns {
		match := pattern.FindString(text)
		if match == "" {
			continue
		}
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		education = append(education, match)
	}

	return education
}
