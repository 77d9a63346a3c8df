package main

import (
	"log"

	"github.com/google/uuid"

	"talentbridge/jobboard/internal/config"
	"talentbridge/jobboard/internal/models"
	"talentbridge/jobboard/internal/repositories"
)

func main() {
	log.Println("🚀 Seeding database...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)

	// Seeding is idempotent: an already-populated database is left alone.
	if count, err := userRepo.Count(); err != nil {
		log.Fatalf("❌ Failed to check users: %v", err)
	} else if count > 0 {
		log.Println("⚠️  Database already seeded. Nothing to do.")
		return
	}

	admin := models.User{
		ID:       uuid.New(),
		Email:    "admin@talentbridge.com",
		FullName: "Admin User",
		IsAdmin:  true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}
	if err := userRepo.Create(&admin); err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	log.Printf("✅ Admin user created: %s", admin.Email)

	demo := models.User{
		ID:       uuid.New(),
		Email:    "demo@talentbridge.com",
		FullName: "Demo User",
		Location: "Remote",
	}
	if err := demo.SetPassword("demo1234"); err != nil {
		log.Fatalf("❌ Failed to hash demo password: %v", err)
	}
	if err := userRepo.Create(&demo); err != nil {
		log.Fatalf("❌ Failed to create demo user: %v", err)
	}
	log.Printf("✅ Demo user created: %s", demo.Email)

	jobs := []models.Job{
		{
			Title:           "Senior Python Developer",
			Company:         "TechCorp Solutions",
			Description:     "We are looking for a Senior Python Developer to build scalable backend services. You will work with Django, PostgreSQL and AWS in an agile team.",
			Requirements:    "5+ years of Python development experience. Strong knowledge of Django and REST APIs.",
			SalaryMin:       120000,
			SalaryMax:       160000,
			Location:        "San Francisco, CA",
			Industry:        "Technology",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			SkillsRequired:  "python,django,postgresql,aws,docker,rest api",
			IsFeatured:      true,
		},
		{
			Title:           "Frontend Engineer",
			Company:         "Creative Digital Agency",
			Description:     "Join our frontend team building modern web applications with React and TypeScript. Close collaboration with designers on UI/UX.",
			Requirements:    "3+ years of frontend experience. Production React experience required.",
			SalaryMin:       90000,
			SalaryMax:       130000,
			Location:        "New York, NY",
			Industry:        "Technology",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			SkillsRequired:  "javascript,typescript,react,html,css",
			IsFeatured:      true,
		},
		{
			Title:           "Data Scientist",
			Company:         "Insight Analytics",
			Description:     "Build machine learning models and data pipelines that power our analytics products. Python, pandas and scikit-learn day to day.",
			Requirements:    "2+ years in data science or machine learning. Strong SQL and Python.",
			SalaryMin:       100000,
			SalaryMax:       140000,
			Location:        "Remote",
			Industry:        "Data & Analytics",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			SkillsRequired:  "python,machine learning,sql,pandas,numpy,tensorflow",
			IsFeatured:      true,
		},
		{
			Title:           "DevOps Engineer",
			Company:         "CloudScale Systems",
			Description:     "Own our Kubernetes infrastructure and CI/CD pipelines. Terraform, AWS and monitoring at scale.",
			Requirements:    "4+ years of DevOps or SRE experience. Kubernetes in production.",
			SalaryMin:       110000,
			SalaryMax:       150000,
			Location:        "Austin, TX",
			Industry:        "Technology",
			JobType:         "Full-time",
			ExperienceLevel: "Senior",
			SkillsRequired:  "kubernetes,docker,terraform,aws,ci/cd,linux",
		},
		{
			Title:           "Product Manager",
			Company:         "NextGen Products",
			Description:     "Drive product strategy for our flagship SaaS platform. Work with engineering, design and sales to ship features customers love.",
			Requirements:    "3+ years of product management experience in B2B software.",
			SalaryMin:       115000,
			SalaryMax:       145000,
			Location:        "Seattle, WA",
			Industry:        "Technology",
			JobType:         "Full-time",
			ExperienceLevel: "Mid-level",
			SkillsRequired:  "product management,agile,scrum,data analysis,communication",
		},
		{
			Title:           "Junior Go Developer",
			Company:         "Startup Hub",
			Description:     "Entry-level backend role building microservices in Go. Great mentorship and growth opportunities.",
			Requirements:    "1+ years of programming experience. Interest in distributed systems.",
			SalaryMin:       70000,
			SalaryMax:       90000,
			Location:        "Remote",
			Industry:        "Technology",
			JobType:         "Full-time",
			ExperienceLevel: "Junior",
			SkillsRequired:  "go,git,sql,rest api",
		},
	}

	for i := range jobs {
		jobs[i].ID = uuid.New()
		jobs[i].SalaryCurrency = "USD"
		jobs[i].IsActive = true
		if err := jobRepo.Create(&jobs[i]); err != nil {
			log.Fatalf("❌ Failed to create job %q: %v", jobs[i].Title, err)
		}
	}
	log.Printf("✅ Created %d sample jobs", len(jobs))

	testimonials := []models.Testimonial{
		{
			Name:       "Sarah Johnson",
			Position:   "Software Engineer",
			Company:    "TechCorp Solutions",
			Content:    "TalentBridge matched me with a role that fit my skills perfectly. I had three interviews within a week of uploading my resume.",
			Rating:     5,
			IsApproved: true,
		},
		{
			Name:       "Michael Chen",
			Position:   "Data Scientist",
			Company:    "Insight Analytics",
			Content:    "The resume analysis showed me exactly which skills to highlight. The job recommendations were spot on.",
			Rating:     5,
			IsApproved: true,
		},
		{
			Name:       "Priya Sharma",
			Position:   "Hiring Manager",
			Company:    "CloudScale Systems",
			Content:    "We filled two senior positions through TalentBridge in under a month. The candidate quality is excellent.",
			Rating:     4,
			IsApproved: true,
		},
	}

	for i := range testimonials {
		testimonials[i].ID = uuid.New()
		if err := testimonialRepo.Create(&testimonials[i]); err != nil {
			log.Fatalf("❌ Failed to create testimonial: %v", err)
		}
	}
	log.Printf("✅ Created %d testimonials", len(testimonials))

	log.Println("✅ Database seeded successfully!")
}
