package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/educenter-api/internal/handler"
	internalmiddleware "github.com/noah-isme/educenter-api/internal/middleware"
	"github.com/noah-isme/educenter-api/internal/service"
	"github.com/noah-isme/educenter-api/pkg/config"
	"github.com/noah-isme/educenter-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/educenter-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/educenter-api/pkg/middleware/requestid"
)

type routerDeps struct {
	metrics      *service.MetricsService
	db           handler.Pinger
	availability *service.AvailabilityService
	teachers     *service.TeacherMappingService
	autoEnroll   *service.AutoEnrollmentService
	results      *service.ResultService
}

func newRouter(cfg *config.Config, logr *zap.Logger, deps routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(deps.metrics))

	metricsHandler := handler.NewMetricsHandler(deps.metrics, deps.db)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	optionsHandler := handler.NewOptionsHandler(deps.availability)
	teacherHandler := handler.NewTeacherMappingHandler(deps.teachers)
	enrollHandler := handler.NewAutoEnrollmentHandler(deps.autoEnroll, deps.results)

	api := r.Group(cfg.APIPrefix)
	api.POST("/branches/options", optionsHandler.Allowed)
	api.GET("/branches/:branchId/teachers", teacherHandler.Mapping)
	api.GET("/branches/:branchId/teachers/lookup", teacherHandler.Lookup)
	api.POST("/auto-enrollments", enrollHandler.Enroll)
	api.POST("/students/:id/auto-enroll", enrollHandler.EnrollStudent)
	api.GET("/students/:id/auto-enroll/result", enrollHandler.Result)
	api.GET("/students/:id/enrollments", enrollHandler.Enrollments)

	return r
}
