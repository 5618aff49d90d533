// Package router wires the election services into a gin engine.
//
// Public routes (under API_PREFIX, default /api):
//
//	POST /candidates            - submit a candidature
//	GET  /candidates            - list candidates
//	GET  /settings/phase        - current phase
//	POST /votes                 - cast a vote
//	GET  /results               - ranked results
//	POST /admin/login           - exchange the admin password for a token
//
// Admin routes (Bearer token with role ADMIN):
//
//	GET   /admin/dashboard
//	GET   /admin/candidates
//	PATCH /admin/candidates/:id
//	GET   /admin/results
//	POST  /admin/settings/phase
//	GET   /admin/export/candidates.csv
//	GET   /admin/export/results.csv
//	GET   /admin/export/results.pdf
//	POST  /admin/reset
//
// Operational routes live at the root: /health, /ready, /metrics and /docs.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-election-api/internal/handler"
	"github.com/noah-isme/sma-election-api/internal/middleware"
	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/internal/repository"
	"github.com/noah-isme/sma-election-api/internal/service"
	"github.com/noah-isme/sma-election-api/pkg/config"
	"github.com/noah-isme/sma-election-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-election-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-election-api/pkg/middleware/requestid"
)

// Dependencies carries everything the routes need.
type Dependencies struct {
	Auth      *service.AuthService
	Metrics   *service.MetricsService
	RateLimit *service.RateLimitService

	Login      *handler.AuthHandler
	Phase      *handler.PhaseHandler
	Candidates *handler.CandidateHandler
	Votes      *handler.VoteHandler
	Results    *handler.ResultHandler
	Exports    *handler.ExportHandler
	Admin      *handler.AdminHandler
	Ops        *handler.MetricsHandler
}

// NewDependencies builds repositories, services and handlers. redisClient may
// be nil, in which case requests are not rate limited.
func NewDependencies(cfg *config.Config, logr *zap.Logger, db *sqlx.DB, redisClient *redis.Client) (Dependencies, error) {
	passwordHash, err := service.HashAdminPassword(cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		return Dependencies{}, err
	}

	validate := validator.New()

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	candidateRepo := repository.NewCandidateRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	resultRepo := repository.NewResultRepository(db)
	electionRepo := repository.NewElectionRepository(db)

	authSvc := service.NewAuthService(validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
		PasswordHash:      passwordHash,
	}, metrics)
	phaseSvc := service.NewPhaseService(settingRepo, logr, metrics)
	candidateSvc := service.NewCandidateService(candidateRepo, phaseSvc, validate, logr, metrics)
	ballotSvc := service.NewBallotService(voteRepo, candidateRepo, phaseSvc, validate, logr, metrics, service.BallotConfig{
		RequireElectorCode: cfg.Election.RequireElectorCode,
	})
	resultSvc := service.NewResultService(resultRepo, logr)
	exportSvc := service.NewExportService(candidateRepo, resultSvc, logr, nil, nil)
	resetSvc := service.NewResetService(electionRepo, logr, metrics)

	var limiter *service.RateLimitService
	if cfg.RateLimit.Enabled {
		limiter = service.NewRateLimitService(repository.NewRateLimitRepository(redisClient, logr), logr, metrics, service.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
		})
	}

	return Dependencies{
		Auth:       authSvc,
		Metrics:    metrics,
		RateLimit:  limiter,
		Login:      handler.NewAuthHandler(authSvc),
		Phase:      handler.NewPhaseHandler(phaseSvc),
		Candidates: handler.NewCandidateHandler(candidateSvc),
		Votes:      handler.NewVoteHandler(ballotSvc),
		Results:    handler.NewResultHandler(resultSvc),
		Exports:    handler.NewExportHandler(exportSvc),
		Admin:      handler.NewAdminHandler(resetSvc),
		Ops:        handler.NewMetricsHandler(metrics, db),
	}, nil
}

// New registers every route on a fresh gin engine.
func New(cfg *config.Config, logr *zap.Logger, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", deps.Ops.Health)
	r.GET("/ready", deps.Ops.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", deps.Ops.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.RateLimit(deps.RateLimit))

	api.POST("/candidates", deps.Candidates.Create)
	api.GET("/candidates", middleware.OptionalJWT(deps.Auth), deps.Candidates.List)
	api.GET("/settings/phase", deps.Phase.Get)
	api.POST("/votes", deps.Votes.Cast)
	api.GET("/results", deps.Results.Tally)
	api.POST("/admin/login", deps.Login.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.JWT(deps.Auth), middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/dashboard", deps.Candidates.Dashboard)
	admin.GET("/candidates", deps.Candidates.List)
	admin.PATCH("/candidates/:id", deps.Candidates.Decide)
	admin.GET("/results", deps.Results.Tally)
	admin.POST("/settings/phase", deps.Phase.Set)
	admin.GET("/export/candidates.csv", deps.Exports.CandidatesCSV)
	admin.GET("/export/results.csv", deps.Exports.ResultsCSV)
	admin.GET("/export/results.pdf", deps.Exports.ResultsPDF)
	admin.POST("/reset", deps.Admin.Reset)

	return r
}
