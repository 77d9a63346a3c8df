package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var user User

	require.NoError(t, user.SetPassword("correct horse battery staple"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse battery staple", user.PasswordHash)

	assert.True(t, user.CheckPassword("correct horse battery staple"))
	assert.False(t, user.CheckPassword("wrong password"))
	assert.False(t, user.CheckPassword(""))
}

func TestJobSalaryDisplay(t *testing.T) {
	tests := []struct {
		name     string
		job      Job
		expected string
	}{
		{"full range", Job{SalaryCurrency: "USD", SalaryMin: 90000, SalaryMax: 120000}, "USD 90000 - 120000"},
		{"min only", Job{SalaryCurrency: "USD", SalaryMin: 90000}, "USD 90000+"},
		{"max only", Job{SalaryCurrency: "EUR", SalaryMax: 80000}, "Up to EUR 80000"},
		{"unspecified", Job{SalaryCurrency: "USD"}, "Competitive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.job.SalaryDisplay())
		})
	}
}

func TestResumeSkillsList(t *testing.T) {
	resume := Resume{ExtractedSkills: "python, django ,aws,"}
	assert.Equal(t, []string{"python", "django", "aws"}, resume.SkillsList())

	assert.Empty(t, (&Resume{}).SkillsList())
}

func TestResumeEducationList(t *testing.T) {
	resume := Resume{Education: "Bachelor of Science,MBA"}
	assert.Equal(t, []string{"Bachelor of Science", "MBA"}, resume.EducationList())

	assert.Empty(t, (&Resume{}).EducationList())
}
