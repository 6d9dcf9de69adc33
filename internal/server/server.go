package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alauddinGen-Z/SLA/internal/common"
	"github.com/alauddinGen-Z/SLA/internal/export"
	"github.com/alauddinGen-Z/SLA/internal/middleware"
	"github.com/alauddinGen-Z/SLA/internal/pipeline"
	"github.com/alauddinGen-Z/SLA/internal/repository"
	"github.com/alauddinGen-Z/SLA/internal/storage"
)

// Server wires the HTTP surface to the pipelines and repositories.
type Server struct {
	cfg       *common.Config
	logger    *slog.Logger
	paralegal *pipeline.Paralegal
	enforcer  *pipeline.Enforcer
	store     storage.BlobStore
	contracts repository.ContractRepository
	incidents repository.IncidentRepository
	claims    repository.ClaimRepository
	exporter  *export.Service
	pool      *pgxpool.Pool
}

func New(
	cfg *common.Config,
	logger *slog.Logger,
	paralegal *pipeline.Paralegal,
	enforcer *pipeline.Enforcer,
	store storage.BlobStore,
	contracts repository.ContractRepository,
	incidents repository.IncidentRepository,
	claims repository.ClaimRepository,
	exporter *export.Service,
	pool *pgxpool.Pool,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:       cfg,
		logger:    logger,
		paralegal: paralegal,
		enforcer:  enforcer,
		store:     store,
		contracts: contracts,
		incidents: incidents,
		claims:    claims,
		exporter:  exporter,
		pool:      pool,
	}
}

// Router builds the gin engine with the full middleware chain and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", s.Health)

	api := router.Group("/api")
	{
		// The agent routes resolve the bearer token themselves so that an
		// auth failure surfaces through the same error path as the rest of
		// the pipeline.
		agents := api.Group("/agents")
		{
			agents.POST("/paralegal", s.RunParalegal)
			agents.POST("/enforcer", s.RunEnforcer)
		}

		protected := api.Group("")
		protected.Use(middleware.Auth(s.cfg.Auth.JWTSecret))
		{
			protected.POST("/contracts/upload", s.UploadContract)
			protected.GET("/contracts", s.ListContracts)
			protected.POST("/incidents/simulate", s.SimulateIncident)
			protected.GET("/incidents", s.ListIncidents)
			protected.GET("/claims", s.ListClaims)
			protected.POST("/claims/:id/approve", s.ApproveClaim)
			protected.GET("/claims/export", s.ExportClaims)
			protected.GET("/dashboard", s.Dashboard)
		}
	}

	return router
}

// Health reports liveness, including a database ping.
func (s *Server) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if s.pool != nil {
		if err := repository.HealthCheck(c.Request.Context(), s.pool, 2*time.Second, s.logger); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	c.JSON(code, gin.H{"status": status})
}

// fail converts any pipeline or repository error into the uniform error
// response body.
func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("request failed",
		"request_id", middleware.GetRequestID(c),
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": common.UserMessage(err)})
}
