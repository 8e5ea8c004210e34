package main

import (
	"class-planner-service/internal/app/config"
	"class-planner-service/internal/app/delivery/http/controllers"
	"class-planner-service/internal/app/delivery/http/middlewares"
	"class-planner-service/internal/app/delivery/http/routers"
	"class-planner-service/internal/app/drivers/database"
	"class-planner-service/internal/app/drivers/logger"
	"class-planner-service/internal/app/drivers/messaging"
	"class-planner-service/internal/app/drivers/storage"
	"class-planner-service/internal/app/services/core/calendar"
	"class-planner-service/internal/app/services/core/catalog"
	generationLogs "class-planner-service/internal/app/services/core/generation_logs"
	"class-planner-service/internal/app/services/core/session"
	"class-planner-service/internal/app/services/core/wizard"
	"class-planner-service/internal/app/services/shared/locker"
	"class-planner-service/internal/app/services/shared/mailer"
	"class-planner-service/internal/app/services/shared/redis"
	"class-planner-service/internal/app/services/shared/schedulegenerator"
	minioStorage "class-planner-service/internal/app/services/shared/storage"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	mongoDB := database.NewMongoDB(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Calendar.BucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		MongoDB:        mongoDB,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Printf("Server listening on port %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Errorf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	generateTimeout := internalConfig.ScheduleGenerator.Timeout
	generateLockTTL := generateTimeout + internalConfig.ScheduleGenerator.LockMargin

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	minioStorageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, internalConfig.RabbitMQ.MailerQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Schedule generator
	generatorLimiter := rate.NewLimiter(
		rate.Limit(internalConfig.ScheduleGenerator.MaxRequestsPerSecond),
		internalConfig.ScheduleGenerator.Burst,
	)
	scheduleGenerator := schedulegenerator.NewScheduleGeneratorClient(
		internalConfig.ScheduleGenerator.BaseUrl,
		internalConfig.ScheduleGenerator.GeneratePath,
		generateTimeout,
		generatorLimiter,
		bootstrap.Logger,
	)

	// Session
	sessionService := session.NewSessionService(
		redisRepository,
		internalConfig.JWT.Secret,
		internalConfig.JWT.ExpTimeInHour,
		time.Duration(internalConfig.Session.ExpiredTimeInHours)*time.Hour,
		bootstrap.Logger,
	)

	// Generation logs
	generationLogRepository := generationLogs.NewGenerationLogMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	generationLogUsecase := generationLogs.NewGenerationLogUsecase(generationLogRepository, bootstrap.Logger)
	generationLogController := controllers.NewGenerationLogController(bootstrap.Logger, generationLogUsecase, requestTimeout)

	// Catalog
	catalogRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	catalogUsecase := catalog.NewCatalogUsecase(catalogRepository, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase, requestTimeout, internalConfig.Catalog.DefaultLimit)
	if internalConfig.Catalog.SeedFile != "" {
		subjects, err := catalog.LoadSeedFile(internalConfig.Catalog.SeedFile)
		if err != nil {
			return err
		}
		seedCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		_, err = catalogUsecase.ImportSubjects(seedCtx, subjects)
		cancel()
		if err != nil {
			return err
		}
	}

	// Wizard
	wizardUsecase := wizard.NewWizardUsecase(
		sessionService,
		lockerService,
		scheduleGenerator,
		generationLogRepository,
		generateTimeout,
		generateLockTTL,
		internalConfig.Session.EditLockTTL,
		bootstrap.Logger,
	)
	wizardController := controllers.NewWizardController(bootstrap.Logger, wizardUsecase, requestTimeout)

	// Calendar
	calendarUsecase := calendar.NewCalendarUsecase(
		sessionService,
		lockerService,
		minioStorageService,
		mailerService,
		internalConfig.Calendar.BucketName,
		internalConfig.Calendar.PreSignedUrlExpiry,
		internalConfig.Mailer.EmailSender,
		internalConfig.Session.EditLockTTL,
		bootstrap.Logger,
	)
	calendarController := controllers.NewCalendarController(bootstrap.Logger, calendarUsecase, requestTimeout)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		wizardController,
		calendarController,
		generationLogController,
		catalogController,
	)

	bootstrap.Logger.Info("Application bootstrapped",
		zap.String("env", internalConfig.App.Env),
		zap.String("schedule_generator", internalConfig.ScheduleGenerator.BaseUrl),
	)
	return nil
}
