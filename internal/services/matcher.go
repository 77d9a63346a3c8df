package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"talentbridge/jobboard/internal/models"
)

// MatchResult is the scored pairing of one resume and one job. Scores are
// percentages in [0, 100], rounded to one decimal place.
type MatchResult struct {
	JobID           uuid.UUID `json:"job_id"`
	OverallScore    float64   `json:"overall_score"`
	SkillMatch      float64   `json:"skill_match"`
	TitleMatch      float64   `json:"title_match"`
	ExperienceMatch float64   `json:"experience_match"`
}

type MatchedJob struct {
	Job   models.Job
	Match MatchResult
}

type JobMatcher interface {
	SkillMatch(resumeSkills []string, jobSkills string) float64
	TitleMatch(resumeText, jobTitle string) float64
	ExperienceMatch(resumeYears *int, jobRequirements string) float64
	Score(resume *models.Resume, job *models.Job) MatchResult
	MatchJobs(resume *models.Resume, jobs []models.Job, limit int) []MatchedJob
}

const (
	skillWeight      = 0.5
	titleWeight      = 0.3
	experienceWeight = 0.2

	// Matches below this overall score are not worth showing.
	minOverallScore = 20.0

	defaultMatchLimit = 20
)

type jobMatcher struct {
	requiredYearsPattern *regexp.Regexp
}

func NewJobMatcher() JobMatcher {
	return &jobMatcher{
		requiredYearsPattern: regexp.MustCompile(`(?i)(\d+)\+?\s*years?`),
	}
}

// SkillMatch implements JobMatcher. A required token counts as matched when
// it contains, or is contained in, any resume skill. The containment is
// deliberately loose in both directions ("js" matches "javascript").
func (m *jobMatcher) SkillMatch(resumeSkills []string, jobSkills string) float64 {
	if len(resumeSkills) == 0 || jobSkills == "" {
		return 0.0
	}

	var required []string
	for _, token := range strings.Split(jobSkills, ",") {
		if t := strings.ToLower(strings.TrimSpace(token)); t != "" {
			required = append(required, t)
		}
	}
	if len(required) == 0 {
		return 0.0
	}

	lowered := make([]string, len(resumeSkills))
	for i, s := range resumeSkills {
		lowered[i] = strings.ToLower(s)
	}

	matched := 0
	for _, req := range required {
		for _, skill := range lowered {
			if strings.Contains(skill, req) || strings.Contains(req, skill) {
				matched++
				break
			}
		}
	}

	return math.Min(float64(matched)/float64(len(required)), 1.0)
}

// TitleMatch implements JobMatcher. Counts title words longer than two
// characters that appear anywhere in the lower-cased resume text.
func (m *jobMatcher) TitleMatch(resumeText, jobTitle string) float64 {
	if resumeText == "" || jobTitle == "" {
		return 0.0
	}

	resumeLower := strings.ToLower(resumeText)
	words := strings.Fields(strings.ToLower(jobTitle))
	if len(words) == 0 {
		return 0.0
	}

	matched := 0
	for _, word := range words {
		if len(word) > 2 && strings.Contains(resumeLower, word) {
			matched++
		}
	}

	return math.Min(float64(matched)/float64(len(words)), 1.0)
}

// ExperienceMatch implements JobMatcher. Unknown resume experience is
// neutral (0.5), not penalized.
func (m *jobMatcher) ExperienceMatch(resumeYears *int, jobRequirements string) float64 {
	if resumeYears == nil {
		return 0.5
	}

	if jobRequirements != "" {
		match := m.requiredYearsPattern.FindStringSubmatch(jobRequirements)
		if match != nil {
			requiredYears, err := strconv.Atoi(match[1])
			if err == nil {
				switch {
				case *resumeYears >= requiredYears:
					return 1.0
				case *resumeYears >= requiredYears-2:
					return 0.7
				default:
					return 0.3
				}
			}
		}
	}

	return 0.5
}

// Score implements JobMatcher.
func (m *jobMatcher) Score(resume *models.Resume, job *models.Job) MatchResult {
	skillScore := m.SkillMatch(resume.SkillsList(), job.SkillsRequired)
	titleScore := m.TitleMatch(resume.ParsedText, job.Title)
	expScore := m.ExperienceMatch(resume.ExperienceYears, job.Requirements)

	overall := skillScore*skillWeight + titleScore*titleWeight + expScore*experienceWeight

	return MatchResult{
		JobID:           job.ID,
		OverallScore:    round1(overall * 100),
		SkillMatch:      round1(skillScore * 100),
		TitleMatch:      round1(titleScore * 100),
		ExperienceMatch: round1(expScore * 100),
	}
}

// MatchJobs implements JobMatcher. Scores every job, keeps results at or
// above the cutoff, and returns them best-first. Ties keep the original job
// order.
func (m *jobMatcher) MatchJobs(resume *models.Resume, jobs []models.Job, limit int) []MatchedJob {
	if resume == nil {
		return nil
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	var matched []MatchedJob
	for i := range jobs {
		result := m.Score(resume, &jobs[i])
		if result.OverallScore >= minOverallScore {
			matched = append(matched, MatchedJob{Job: jobs[i], Match: result})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Match.OverallScore > matched[j].Match.OverallScore
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	return matched
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
