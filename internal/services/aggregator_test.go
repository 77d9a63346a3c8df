package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talentbridge/jobboard/internal/models"
)

func TestGenerateExternalID(t *testing.T) {
	id := generateExternalID("indeed", "Senior Developer", "Acme", "https://indeed.com/viewjob?jk=1")

	assert.Len(t, id, 16)

	// Stable across calls
	assert.Equal(t, id, generateExternalID("indeed", "Senior Developer", "Acme", "https://indeed.com/viewjob?jk=1"))

	// Any component change produces a different fingerprint
	assert.NotEqual(t, id, generateExternalID("linkedin", "Senior Developer", "Acme", "https://indeed.com/viewjob?jk=1"))
	assert.NotEqual(t, id, generateExternalID("indeed", "Junior Developer", "Acme", "https://indeed.com/viewjob?jk=1"))
}

func TestScrapers(t *testing.T) {
	aggregator := NewJobAggregator(nil)

	indeed := aggregator.ScrapeIndeedJobs("software engineer", "remote")
	require.Len(t, indeed, 3)
	assert.Equal(t, "Senior Software Engineer", indeed[0].Title)
	assert.Equal(t, "remote", indeed[0].Location)
	for _, job := range indeed {
		assert.Len(t, job.ExternalID, 16)
		assert.NotEmpty(t, job.URL)
	}

	linkedin := aggregator.ScrapeLinkedInJobs("designer", "new york")
	require.Len(t, linkedin, 2)
	assert.Equal(t, "Staff Designer", linkedin[0].Title)

	naukri := aggregator.ScrapeNaukriJobs("data scientist", "bangalore")
	require.Len(t, naukri, 3)
	assert.Equal(t, "Lead Data Scientist", naukri[1].Title)
}

type fakeAggregatedJobRepo struct {
	seen map[string]bool
}

func newFakeAggregatedJobRepo() *fakeAggregatedJobRepo {
	return &fakeAggregatedJobRepo{seen: make(map[string]bool)}
}

func (f *fakeAggregatedJobRepo) Upsert(job *models.AggregatedJob) (bool, error) {
	key := job.SourcePlatform + ":" + job.ExternalID
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func (f *fakeAggregatedJobRepo) ListActive(keyword, location string, limit int) ([]models.AggregatedJob, error) {
	return nil, nil
}

func (f *fakeAggregatedJobRepo) List(page, perPage int) ([]models.AggregatedJob, int64, error) {
	return nil, 0, nil
}

func (f *fakeAggregatedJobRepo) SetActive(id uuid.UUID, isActive bool) error { return nil }

func (f *fakeAggregatedJobRepo) Count() (int64, error) { return int64(len(f.seen)), nil }

func TestRunAggregationDeduplicates(t *testing.T) {
	repo := newFakeAggregatedJobRepo()
	aggregator := NewJobAggregator(repo)

	// Sample rows vary by keyword but not by location, so the default grid
	// of 4 keywords x 4 locations collapses to 8 unique jobs per keyword.
	added, err := aggregator.RunAggregation(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 32, added)

	// A second run upserts existing rows without creating anything new.
	added, err = aggregator.RunAggregation(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestRunAggregationCustomGrid(t *testing.T) {
	repo := newFakeAggregatedJobRepo()
	aggregator := NewJobAggregator(repo)

	added, err := aggregator.RunAggregation([]string{"golang developer"}, []string{"remote"})
	require.NoError(t, err)
	assert.Equal(t, 8, added)
}
