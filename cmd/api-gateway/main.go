package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/noah-isme/educenter-api/api/swagger"
	"github.com/noah-isme/educenter-api/internal/repository"
	"github.com/noah-isme/educenter-api/internal/service"
	"github.com/noah-isme/educenter-api/pkg/cache"
	"github.com/noah-isme/educenter-api/pkg/config"
	"github.com/noah-isme/educenter-api/pkg/database"
	"github.com/noah-isme/educenter-api/pkg/jobs"
	"github.com/noah-isme/educenter-api/pkg/logger"
)

// @title EduCenter Matching API
// @version 1.0.0
// @description Registration option narrowing, teacher lookup and auto-enrollment
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger) error {
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.AutoEnrollment.ResultStoreEnabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, auto-enrollment results will not be stored", zap.Error(err))
			redisClient = nil
		}
	}
	results := repository.NewResultRepository(redisClient)
	defer results.Close() //nolint:errcheck

	validate := validator.New()
	metrics := service.NewMetricsService()

	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	resultSvc := service.NewResultService(results, metrics, cfg.AutoEnrollment.ResultTTL, logr, redisClient != nil)
	availabilitySvc := service.NewAvailabilityService(classRepo, metrics, logr)
	teacherSvc := service.NewTeacherMappingService(classRepo, metrics, validate, logr)
	autoEnrollSvc := service.NewAutoEnrollmentService(classRepo, studentRepo, enrollmentRepo, resultSvc, metrics, validate, logr)

	queue := jobs.NewQueue("auto-enrollment", autoEnrollSvc.HandleJob, jobs.QueueConfig{
		Workers:    cfg.AutoEnrollment.Workers,
		MaxRetries: cfg.AutoEnrollment.Retries,
		RetryDelay: cfg.AutoEnrollment.RetryDelay,
		Logger:     logr,
	})
	autoEnrollSvc.SetQueue(queue)

	router := newRouter(cfg, logr, routerDeps{
		metrics:      metrics,
		db:           db,
		availability: availabilitySvc,
		teachers:     teacherSvc,
		autoEnroll:   autoEnrollSvc,
		results:      resultSvc,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	return serve(ctx, logr, srv, queue, cfg.ShutdownTimeout)
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type backgroundQueue interface {
	Start(ctx context.Context)
	Stop()
}

// serve starts the queue before the listener so async requests never see a stopped queue,
// then runs until ctx is cancelled or the listener fails.
func serve(ctx context.Context, logr *zap.Logger, srv httpServer, queue backgroundQueue, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)
	queue.Start(gctx)
	g.Go(func() error {
		<-gctx.Done()
		queue.Stop()
		return nil
	})
	g.Go(func() error {
		logr.Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logr.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
