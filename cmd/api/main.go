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

	"alfredoptarigan/ats-resume-scorer/internal/config"
	"alfredoptarigan/ats-resume-scorer/internal/handlers"
	"alfredoptarigan/ats-resume-scorer/internal/repositories"
	"alfredoptarigan/ats-resume-scorer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database. A missing or unreachable store is not fatal:
	// the server still answers, persistence reports the fault per request.
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Printf("⚠️  Evaluation store unavailable: %v (evaluations will not be persisted)", err)
	}

	evalRepo := repositories.NewEvaluationRepository(db)

	// Initialize services
	pdfParser := services.NewPDFParserService()

	chatClient, err := services.NewAzureChatClient(cfg.Azure)
	if err != nil {
		log.Printf("⚠️  Azure AI unavailable: %v (evaluations will be degraded)", err)
	} else {
		log.Println("✅ Azure AI client initialized successfully")
	}

	evaluator := services.NewEvaluatorService(chatClient, cfg.Azure.Model)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	evaluateHandler := handlers.NewEvaluateHandler(pdfParser, evaluator, evalRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. The body limit sits above the validation cap so the
	// validator owns the 413 and its message.
	app := fiber.New(fiber.Config{
		AppName:      "AI ATS Resume Scorer",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    services.MaxFileSize + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	handlers.RegisterRoutes(app, evaluateHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
