package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"legalease/internal/authenticity"
	"legalease/internal/config"
	"legalease/internal/email/noop"
	"legalease/internal/email/ses"
	"legalease/internal/extractor/pdftext"
	"legalease/internal/genai"
	"legalease/internal/genai/gemini"
	"legalease/internal/handler"
	"legalease/internal/pipeline"
	"legalease/internal/port"
	"legalease/internal/repository/postgres"
	"legalease/internal/router"
	"legalease/internal/service"
	s3storage "legalease/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	fileRepo := postgres.NewFileMetaRepo(db)
	resultRepo := postgres.NewResultRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	// Initialize text generation with graceful degradation
	generator := genai.NewResilient(gemini.NewClient(&cfg.GenAI))

	// Initialize the processing pipeline
	p := pipeline.New(
		cfg.Pipeline,
		cfg.S3.Bucket,
		s3Client,
		fileRepo,
		pdftext.New(),
		authenticity.NewDefaultScorer(),
		generator,
		resultRepo,
		emailSender,
	)
	runner := pipeline.NewRunner(p, cfg.Pipeline)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	qaSvc := service.NewQAService(generator)
	resultSvc := service.NewResultService(resultRepo, fileRepo, s3Client, qaSvc, cfg.S3)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	documentH := handler.NewDocumentHandler(p, userSvc, cfg.S3)
	jobH := handler.NewJobHandler(p.Tracker())
	resultH := handler.NewResultHandler(resultSvc)
	aiH := handler.NewAIHandler(generator, qaSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, documentH, jobH, resultH, aiH, userH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start the pipeline runner; it drains in-flight stages on cancel
	runnerCtx, stopRunner := context.WithCancel(context.Background())
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		runner.Start(runnerCtx)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		stopRunner()
		<-runnerDone
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	stopRunner()
	<-runnerDone
	return nil
}
