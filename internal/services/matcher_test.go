package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/jobboard/internal/models"
)

func TestSkillMatch(t *testing.T) {
	matcher := NewJobMatcher()

	tests := []struct {
		name         string
		resumeSkills []string
		jobSkills    string
		expected     float64
	}{
		{
			name:         "partial overlap",
			resumeSkills: []string{"python", "django", "aws"},
			jobSkills:    "python, django, react",
			expected:     2.0 / 3.0,
		},
		{
			name:         "full overlap",
			resumeSkills: []string{"python", "sql"},
			jobSkills:    "python,sql",
			expected:     1.0,
		},
		{
			name:         "substring containment both directions",
			resumeSkills: []string{"node.js"},
			jobSkills:    "js",
			expected:     1.0,
		},
		{
			name:         "no resume skills",
			resumeSkills: nil,
			jobSkills:    "python",
			expected:     0.0,
		},
		{
			name:         "empty job skills",
			resumeSkills: []string{"python"},
			jobSkills:    "",
			expected:     0.0,
		},
		{
			name:         "whitespace-only job skills",
			resumeSkills: []string{"python"},
			jobSkills:    " , ,  ",
			expected:     0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matcher.SkillMatch(tt.resumeSkills, tt.jobSkills), 1e-9)
		})
	}
}

func TestTitleMatch(t *testing.T) {
	matcher := NewJobMatcher()

	tests := []struct {
		name       string
		resumeText string
		jobTitle   string
		expected   float64
	}{
		{
			name:       "all words present",
			resumeText: "Experienced software engineer with strong Python skills",
			jobTitle:   "Software Engineer",
			expected:   1.0,
		},
		{
			name:       "short words count against the denominator",
			resumeText: "Experienced software engineer",
			jobTitle:   "IT Software Engineer",
			expected:   2.0 / 3.0,
		},
		{
			name:       "no overlap",
			resumeText: "ten years in accounting",
			jobTitle:   "Software Engineer",
			expected:   0.0,
		},
		{
			name:       "empty title",
			resumeText: "some text",
			jobTitle:   "",
			expected:   0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matcher.TitleMatch(tt.resumeText, tt.jobTitle), 1e-9)
		})
	}
}

func TestExperienceMatch(t *testing.T) {
	matcher := NewJobMatcher()

	tests := []struct {
		name         string
		resumeYears  *int
		requirements string
		expected     float64
	}{
		{"unknown experience is neutral", nil, "5+ years required", 0.5},
		{"meets requirement", intPtr(5), "3+ years of experience", 1.0},
		{"within two years of requirement", intPtr(5), "7 years of experience", 0.7},
		{"well below requirement", intPtr(2), "7 years of experience", 0.3},
		{"no years in requirements", intPtr(4), "must love teamwork", 0.5},
		{"empty requirements", intPtr(4), "", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matcher.ExperienceMatch(tt.resumeYears, tt.requirements), 1e-9)
		})
	}
}

func TestScore(t *testing.T) {
	matcher := NewJobMatcher()

	resume := &models.Resume{
		ParsedText:      "Experienced software engineer skilled in python, django and aws",
		ExtractedSkills: "python,django,aws",
		ExperienceYears: intPtr(5),
	}
	job := &models.Job{
		ID:             uuid.New(),
		Title:          "Software Engineer",
		SkillsRequired: "python, django, react",
		Requirements:   "3+ years of experience",
	}

	result := matcher.Score(resume, job)

	assert.Equal(t, job.ID, result.JobID)
	assert.InDelta(t, 66.7, result.SkillMatch, 1e-9)
	assert.InDelta(t, 100.0, result.TitleMatch, 1e-9)
	assert.InDelta(t, 100.0, result.ExperienceMatch, 1e-9)
	// 0.5*2/3 + 0.3*1.0 + 0.2*1.0, as a percentage rounded to one decimal
	assert.InDelta(t, 83.3, result.OverallScore, 1e-9)
}

func TestMatchJobs(t *testing.T) {
	matcher := NewJobMatcher()

	resume := &models.Resume{
		ParsedText:      "python developer with django experience",
		ExtractedSkills: "python,django",
		ExperienceYears: intPtr(4),
	}

	strong := models.Job{
		ID:             uuid.New(),
		Title:          "Python Developer",
		SkillsRequired: "python, django",
		Requirements:   "3+ years of experience",
	}
	weak := models.Job{
		ID:             uuid.New(),
		Title:          "Marketing Lead",
		SkillsRequired: "seo, copywriting",
	}
	medium := models.Job{
		ID:             uuid.New(),
		Title:          "Django Developer",
		SkillsRequired: "django, react, vue",
		Requirements:   "2 years of experience",
	}

	matched := matcher.MatchJobs(resume, []models.Job{weak, medium, strong}, 0)

	require.Len(t, matched, 2)
	assert.Equal(t, strong.ID, matched[0].Job.ID)
	assert.Equal(t, medium.ID, matched[1].Job.ID)
	assert.Greater(t, matched[0].Match.OverallScore, matched[1].Match.OverallScore)

	for _, m := range matched {
		assert.GreaterOrEqual(t, m.Match.OverallScore, 20.0)
	}
}

func TestMatchJobsLimit(t *testing.T) {
	matcher := NewJobMatcher()

	resume := &models.Resume{
		ParsedText:      "python developer",
		ExtractedSkills: "python",
	}

	var jobs []models.Job
	for i := 0; i < 5; i++ {
		jobs = append(jobs, models.Job{
			ID:             uuid.New(),
			Title:          "Python Developer",
			SkillsRequired: "python",
		})
	}

	matched := matcher.MatchJobs(resume, jobs, 2)
	assert.Len(t, matched, 2)

	// Ties keep the input order
	assert.Equal(t, jobs[0].ID, matched[0].Job.ID)
	assert.Equal(t, jobs[1].ID, matched[1].Job.ID)
}

func TestMatchJobsNilResume(t *testing.T) {
	matcher := NewJobMatcher()
	assert.Nil(t, matcher.MatchJobs(nil, []models.Job{{ID: uuid.New()}}, 10))
}
