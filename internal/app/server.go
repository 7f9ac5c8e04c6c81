// internal/app/server.go
package app

import (
	"context"
	"net/http"
	"time"

	"campus-portal/internal/apiclient"
	"campus-portal/internal/config"
	"campus-portal/internal/db"
	adminHandler "campus-portal/internal/handlers/admin"
	authHandler "campus-portal/internal/handlers/auth"
	instructorHandler "campus-portal/internal/handlers/instructor"
	navHandler "campus-portal/internal/handlers/nav"
	studentHandler "campus-portal/internal/handlers/student"
	"campus-portal/internal/middleware"
	"campus-portal/internal/session"
	adminUsecase "campus-portal/internal/service/admin"
	authUsecase "campus-portal/internal/service/auth"
	instructorUsecase "campus-portal/internal/service/instructor"
	studentUsecase "campus-portal/internal/service/student"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	srv    *http.Server
}

func NewServer() *Server {
	cfg := config.Load()
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{cfg: cfg, engine: gin.New()}
}

func (s *Server) Start() error {
	// ----- Logger -----
	var logger *zap.Logger
	var err error
	if s.cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis identity cache (optional) -----
	var identityCache *session.IdentityCache
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			// The cache only saves round trips; the portal works without it.
			logger.Warn("redis unavailable, identity cache disabled", zap.Error(err))
		} else {
			logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))
			identityCache = session.NewIdentityCache(redisClient, s.cfg.IdentityCacheTTL, logger)
		}
	}

	// ----- Upstream API client -----
	client := apiclient.New(
		s.cfg.BackendBaseURL,
		apiclient.WithHTTPClient(&http.Client{Timeout: s.cfg.UpstreamTimeout}),
		apiclient.WithLogger(logger),
	)

	// ----- Services -----
	authService := authUsecase.NewService(client, logger)
	adminService := adminUsecase.NewAdminService(client, logger)
	instructorService := instructorUsecase.NewInstructorService(client, logger)
	studentService := studentUsecase.NewStudentService(client, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:       authHandler.NewAuthHandler(logger),
		NavHandler:        navHandler.NewNavHandler(),
		AdminHandler:      adminHandler.NewAdminHandler(adminService, logger),
		InstructorHandler: instructorHandler.NewInstructorHandler(instructorService, logger),
		StudentHandler:    studentHandler.NewStudentHandler(studentService, logger),
		Session:           middleware.NewSessionMiddleware(authService, identityCache, s.cfg.CookieSecure, logger),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	SetupRouter(s.engine, handlers)

	s.srv = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	logger.Info("portal listening",
		zap.String("addr", s.cfg.HTTPAddr),
		zap.String("backend", s.cfg.BackendBaseURL),
	)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}
