package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentbridge/jobboard/internal/config"
	"talentbridge/jobboard/internal/handlers"
	"talentbridge/jobboard/internal/repositories"
	"talentbridge/jobboard/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	aggRepo := repositories.NewAggregatedJobRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	employerRepo := repositories.NewEmployerRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	vocab := services.NewVocabulary()
	extractor := services.NewTextExtractor()
	parser := services.NewResumeParser(extractor, vocab)
	matcher := services.NewJobMatcher()
	augmenter := services.NewAugmenter(cfg.Gemini.APIKey)
	aggregator := services.NewJobAggregator(aggRepo)
	log.Println("✅ Services initialized successfully")

	// Vector job search needs both Qdrant and Gemini; otherwise the
	// similar-jobs lookup falls back to SQL.
	searchService := services.NewDisabledJobSearchService()
	if cfg.Qdrant.URL != "" && cfg.Gemini.APIKey != "" {
		geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
		}

		searchService, err = services.NewJobSearchService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			geminiService,
		)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := searchService.InitCollection(); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		log.Println("✅ Vector job search initialized successfully")
	} else {
		log.Println("⚠️  Vector job search disabled. Using SQL similar-jobs fallback.")
	}

	// Start the aggregation worker when enabled
	var worker services.AggregationWorker
	if cfg.Aggregation.Enabled {
		worker = services.NewAggregationWorker(aggregator, cfg.Aggregation.Interval)
		worker.Start()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg.Session.Lifetime)
	mainHandler := handlers.NewMainHandler(
		jobRepo,
		candidateRepo,
		employerRepo,
		messageRepo,
		testimonialRepo,
	)
	jobHandler := handlers.NewJobHandler(
		jobRepo,
		aggRepo,
		userRepo,
		appRepo,
		resumeRepo,
		searchService,
		authHandler,
		cfg.Storage.JobsPerPage,
	)
	resumeHandler := handlers.NewResumeHandler(
		resumeRepo,
		jobRepo,
		storageService,
		parser,
		matcher,
		augmenter,
		cfg.Storage.MaxFileSize,
	)
	adminHandler := handlers.NewAdminHandler(
		userRepo,
		jobRepo,
		aggRepo,
		resumeRepo,
		appRepo,
		candidateRepo,
		employerRepo,
		messageRepo,
		testimonialRepo,
		aggregator,
		searchService,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentBridge API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Get("/home", mainHandler.HandleHome)
	api.Get("/testimonials", mainHandler.HandleTestimonials)
	api.Post("/candidates", mainHandler.HandleCandidateIntake)
	api.Post("/employers", mainHandler.HandleEmployerIntake)
	api.Post("/contact", mainHandler.HandleContact)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)
	auth.Post("/logout", authHandler.HandleLogout)
	auth.Get("/me", authHandler.RequireAuth, authHandler.HandleMe)
	auth.Put("/me", authHandler.RequireAuth, authHandler.HandleUpdateProfile)
	auth.Put("/password", authHandler.RequireAuth, authHandler.HandleChangePassword)
	auth.Get("/saved-jobs", authHandler.RequireAuth, authHandler.HandleSavedJobs)

	// Jobs
	jobs := api.Group("/jobs")
	jobs.Get("/", jobHandler.HandleList)
	jobs.Get("/applications", authHandler.RequireAuth, jobHandler.HandleMyApplications)
	jobs.Get("/:id", jobHandler.HandleDetail)
	jobs.Post("/:id/save", authHandler.RequireAuth, jobHandler.HandleToggleSave)
	jobs.Post("/:id/apply", authHandler.RequireAuth, jobHandler.HandleApply)

	// Resumes
	resumes := api.Group("/resumes", authHandler.RequireAuth)
	resumes.Post("/upload", resumeHandler.HandleUpload)
	resumes.Get("/", resumeHandler.HandleList)
	resumes.Get("/recommended", resumeHandler.HandleRecommended)
	resumes.Get("/:id/analysis", resumeHandler.HandleAnalysis)
	resumes.Get("/:id/download", resumeHandler.HandleDownload)
	resumes.Post("/:id/primary", resumeHandler.HandleSetPrimary)
	resumes.Delete("/:id", resumeHandler.HandleDelete)

	// Admin back office
	admin := api.Group("/admin", authHandler.RequireAdmin)
	admin.Get("/dashboard", adminHandler.HandleDashboard)
	admin.Post("/jobs", adminHandler.HandleCreateJob)
	admin.Put("/jobs/:id", adminHandler.HandleUpdateJob)
	admin.Delete("/jobs/:id", adminHandler.HandleDeleteJob)
	admin.Post("/search/reindex", adminHandler.HandleReindexJobs)
	admin.Get("/users", adminHandler.HandleListUsers)
	admin.Put("/users/:id/admin", adminHandler.HandleToggleAdmin)
	admin.Get("/candidates", adminHandler.HandleListCandidates)
	admin.Put("/candidates/:id/status", adminHandler.HandleUpdateCandidateStatus)
	admin.Get("/employers", adminHandler.HandleListEmployers)
	admin.Put("/employers/:id/status", adminHandler.HandleUpdateEmployerStatus)
	admin.Get("/applications", adminHandler.HandleListApplications)
	admin.Put("/applications/:id/status", adminHandler.HandleUpdateApplicationStatus)
	admin.Get("/messages", adminHandler.HandleListMessages)
	admin.Put("/messages/:id/read", adminHandler.HandleMarkMessageRead)
	admin.Get("/testimonials", adminHandler.HandleListTestimonials)
	admin.Post("/testimonials", adminHandler.HandleCreateTestimonial)
	admin.Put("/testimonials/:id/approve", adminHandler.HandleToggleTestimonial)
	admin.Delete("/testimonials/:id", adminHandler.HandleDeleteTestimonial)
	admin.Get("/aggregated-jobs", adminHandler.HandleListAggregatedJobs)
	admin.Put("/aggregated-jobs/:id/deactivate", adminHandler.HandleDeactivateAggregatedJob)
	admin.Post("/aggregation/run", adminHandler.HandleRunAggregation)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentBridge API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/jobs",
				"POST /api/v1/auth/register",
				"POST /api/v1/resumes",
				"GET /api/v1/resumes/recommended",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if worker != nil {
			worker.Stop()
		}
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
