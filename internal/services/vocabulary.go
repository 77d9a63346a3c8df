package services

import (
	"regexp"
	"strings"
)

// commonSkills is the controlled vocabulary the skill extractor matches
// against. Matching happens at word boundaries only, so ordering matters for
// the alternation: longer phrases must come before their prefixes
// ("javascript" before "java").
var commonSkills = []string{
	"python", "javascript", "java", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust",
	"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins", "ci/cd",
	"machine learning", "deep learning", "tensorflow", "pytorch", "scikit-learn", "nlp",
	"data analysis", "data visualization", "tableau", "power bi", "excel",
	"agile", "scrum", "jira", "git", "github", "gitlab",
	"html", "css", "sass", "bootstrap", "tailwind",
	"rest api", "graphql", "microservices", "api design",
	"linux", "bash", "shell scripting", "networking",
	"project management", "team leadership", "communication", "problem solving",
	"figma", "sketch", "adobe xd", "photoshop", "illustrator",
	"salesforce", "sap", "oracle", "erp", "crm",
	"blockchain", "web3", "solidity", "ethereum",
	"mobile development", "ios", "android", "react native", "flutter",
	"testing", "selenium", "cypress", "jest", "unit testing", "qa",
	"security", "penetration testing", "owasp", "cybersecurity",
	"devops", "sre", "monitoring", "logging", "prometheus", "grafana",
}

// Vocabulary holds the fixed extraction rules: the skill phrase list and the
// compiled entity patterns. It is built once at startup and never mutated.
type Vocabulary struct {
	Skills []string

	skillPattern *regexp.Regexp
	emailPattern *regexp.Regexp

	// Ordered by priority; the first pattern that matches wins.
	phonePatterns []*regexp.Regexp

	// Ordered by priority; an out-of-range capture moves on to the next
	// pattern, never to a later match of the same one.
	experiencePatterns []*regexp.Regexp

	educationPatterns []*regexp.Regexp
}

func NewVocabulary() *Vocabulary {
	escaped := make([]string, len(commonSkills))
	for i, skill := range commonSkills {
		escaped[i] = regexp.QuoteMeta(skill)
	}

	return &Vocabulary{
		Skills:       commonSkills,
		skillPattern: regexp.MustCompile(`(?i)\b(` + strings.Join(escaped, "|") + `)\b`),
		emailPattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`\+?1?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{10,12}`),
			regexp.MustCompile(`\d{10}`),
		},
		experiencePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
			regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
			regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in\s*(?:the\s*)?(?:industry|field)`),
		},
		educationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)bachelor'?s?\s*(?:of\s*)?(?:science|arts|engineering|technology)`),
			regexp.MustCompile(`(?i)master'?s?\s*(?:of\s*)?(?:science|arts|engineering|business|technology)`),
			regexp.MustCompile(`(?i)ph\.?d\.?`),
			regexp.MustCompile(`(?i)doctorate`),
			regexp.MustCompile(`(?i)mba`),
			regexp.MustCompile(`(?i)b\.?tech`),
			regexp.MustCompile(`(?i)m\.?tech`),
			regexp.MustCompile(`(?i)b\.?e\.?`),
			regexp.MustCompile(`(?i)m\.?e\.?`),
			regexp.MustCompile(`(?i)b\.?sc`),
			regexp.MustCompile(`(?i)m\.?sc`),
			regexp.MustCompile(`(?i)b\.?a\.?`),
			regexp.MustCompile(`(?i)m\.?a\.?`),
			regexp.MustCompile(`(?i)bca`),
			regexp.MustCompile(`(?i)mca`),
			regexp.MustCompile(`(?i)diploma`),
		},
	}
}
