package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"unicode"

	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
)

// ScrapedJob is one row returned by a platform scraper before persistence.
type ScrapedJob struct {
	Title       string
	Company     string
	Location    string
	Description string
	SalaryInfo  string
	JobType     string
	URL         string
	ExternalID  string
}

// JobAggregator pulls postings from external boards. The per-platform
// scrapers currently return fixed sample rows; real scraping is out of scope.
type JobAggregator interface {
	ScrapeIndeedJobs(keyword, location string) []ScrapedJob
	ScrapeLinkedInJobs(keyword, location string) []ScrapedJob
	ScrapeNaukriJobs(keyword, location string) []ScrapedJob
	RunAggregation(keywords, locations []string) (int, error)
}

type jobAggregator struct {
	aggRepo repositories.AggregatedJobRepository
}

func NewJobAggregator(aggRepo repositories.AggregatedJobRepository) JobAggregator {
	return &jobAggregator{aggRepo: aggRepo}
}

// generateExternalID builds a stable 16-hex-char fingerprint so repeated
// aggregation runs update rather than duplicate.
func generateExternalID(platform, title, company, url string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%s:%s:%s", platform, title, company, url)))
	return hex.EncodeToString(sum[:])[:16]
}

// ScrapeIndeedJobs implements JobAggregator.
func (a *jobAggregator) ScrapeIndeedJobs(keyword, location string) []ScrapedJob {
	jobs := []ScrapedJob{
		{
			Title:       fmt.Sprintf("Senior %s", titleCase(keyword)),
			Company:     "Tech Innovations Inc",
			Location:    location,
			Description: fmt.Sprintf("Looking for an experienced %s to join our growing team.", keyword),
			SalaryInfo:  "$80,000 - $120,000",
			JobType:     "Full-time",
			URL:         "https://indeed.com/viewjob?jk=sample1",
		},
		{
			Title:       fmt.Sprintf("%s - Remote", titleCase(keyword)),
			Company:     "Digital Solutions LLC",
			Location:    "Remote",
			Description: fmt.Sprintf("Join our remote team as a %s. Flexible hours.", keyword),
			SalaryInfo:  "$70,000 - $100,000",
			JobType:     "Full-time",
			URL:         "https://indeed.com/viewjob?jk=sample2",
		},
		{
			Title:       fmt.Sprintf("Junior %s", titleCase(keyword)),
			Company:     "StartUp Hub",
			Location:    location,
			Description: fmt.Sprintf("Great opportunity for entry-level %ss.", keyword),
			SalaryInfo:  "$50,000 - $70,000",
			JobType:     "Full-time",
			URL:         "https://indeed.com/viewjob?jk=sample3",
		},
	}

	for i := range jobs {
		jobs[i].ExternalID = generateExternalID("indeed", jobs[i].Title, jobs[i].Company, jobs[i].URL)
	}

	log.Printf("📥 Aggregated %d jobs from Indeed\n", len(jobs))
	return jobs
}

// ScrapeLinkedInJobs implements JobAggregator.
func (a *jobAggregator) ScrapeLinkedInJobs(keyword, location string) []ScrapedJob {
	jobs := []ScrapedJob{
		{
			Title:       fmt.Sprintf("Staff %s", titleCase(keyword)),
			Company:     "Enterprise Corp",
			Location:    location,
			Description: fmt.Sprintf("Lead %s position with competitive benefits.", keyword),
			SalaryInfo:  "$150,000 - $200,000",
			JobType:     "Full-time",
			URL:         "https://linkedin.com/jobs/view/sample1",
		},
		{
			Title:       fmt.Sprintf("%s II", titleCase(keyword)),
			Company:     "Innovation Labs",
			Location:    "Hybrid - " + location,
			Description: fmt.Sprintf("Mid-level %s role in an innovative environment.", keyword),
			SalaryInfo:  "$90,000 - $130,000",
			JobType:     "Full-time",
			URL:         "https://linkedin.com/jobs/view/sample2",
		},
	}

	for i := range jobs {
		jobs[i].ExternalID = generateExternalID("linkedin", jobs[i].Title, jobs[i].Company, jobs[i].URL)
	}

	log.Printf("📥 Aggregated %d jobs from LinkedIn\n", len(jobs))
	return jobs
}

// ScrapeNaukriJobs implements JobAggregator.
func (a *jobAggregator) ScrapeNaukriJobs(keyword, location string) []ScrapedJob {
	jobs := []ScrapedJob{
		{
			Title:       fmt.Sprintf("%s - MNC", titleCase(keyword)),
			Company:     "Global Tech Solutions",
			Location:    location,
			Description: fmt.Sprintf("Exciting %s opportunity at a leading MNC.", keyword),
			SalaryInfo:  "₹15,00,000 - ₹25,00,000",
			JobType:     "Full-time",
			URL:         "https://naukri.com/job-listings/sample1",
		},
		{
			Title:       fmt.Sprintf("Lead %s", titleCase(keyword)),
			Company:     "Indian IT Services",
			Location:    location,
			Description: fmt.Sprintf("Lead a team of %ss in challenging projects.", keyword),
			SalaryInfo:  "₹20,00,000 - ₹35,00,000",
			JobType:     "Full-time",
			URL:         "https://naukri.com/job-listings/sample2",
		},
		{
			Title:       fmt.Sprintf("Fresher %s", titleCase(keyword)),
			Company:     "Tech Startup India",
			Location:    location,
			Description: fmt.Sprintf("Great opportunity for fresh graduates in %s.", keyword),
			SalaryInfo:  "₹4,00,000 - ₹8,00,000",
			JobType:     "Full-time",
			URL:         "https://naukri.com/job-listings/sample3",
		},
	}

	for i := range jobs {
		jobs[i].ExternalID = generateExternalID("naukri", jobs[i].Title, jobs[i].Company, jobs[i].URL)
	}

	log.Printf("📥 Aggregated %d jobs from Naukri\n", len(jobs))
	return jobs
}

func (a *jobAggregator) saveJobs(jobs []ScrapedJob, platform string) (int, error) {
	savedCount := 0
	for _, job := range jobs {
		created, err := a.aggRepo.Upsert(&models.AggregatedJob{
			SourcePlatform: platform,
			ExternalID:     job.ExternalID,
			Title:          job.Title,
			Company:        job.Company,
			Description:    job.Description,
			Location:       job.Location,
			SalaryInfo:     job.SalaryInfo,
			JobType:        job.JobType,
			URL:            job.URL,
			IsActive:       true,
		})
		if err != nil {
			log.Printf("❌ Error saving job: %v\n", err)
			continue
		}
		if created {
			savedCount++
		}
	}

	log.Printf("💾 Saved %d new jobs from %s\n", savedCount, platform)
	return savedCount, nil
}

// RunAggregation implements JobAggregator. Runs every scraper over the
// keyword x location grid and upserts the results.
func (a *jobAggregator) RunAggregation(keywords, locations []string) (int, error) {
	if len(keywords) == 0 {
		keywords = []string{"software engineer", "data scientist", "product manager", "designer"}
	}
	if len(locations) == 0 {
		locations = []string{"remote", "new york", "san francisco", "bangalore"}
	}

	totalJobs := 0

	for _, keyword := range keywords {
		for _, location := range locations {
			for platform, jobs := range map[string][]ScrapedJob{
				"indeed":   a.ScrapeIndeedJobs(keyword, location),
				"linkedin": a.ScrapeLinkedInJobs(keyword, location),
				"naukri":   a.ScrapeNaukriJobs(keyword, location),
			} {
				saved, err := a.saveJobs(jobs, platform)
				if err != nil {
					return totalJobs, err
				}
				totalJobs += saved
			}
		}
	}

	log.Printf("✅ Total aggregation complete. Added %d new jobs.\n", totalJobs)
	return totalJobs, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
