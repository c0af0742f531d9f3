package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/logger"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/zap"
)

// Services is everything the router serves.
type Services struct {
	Jobs            *services.JobService
	Candidates      *services.CandidateService
	Companies       *services.CompanyService
	Applications    *services.ApplicationService
	Messages        *services.MessageService
	SavedJobs       *services.SavedJobsService
	SavedCandidates *services.SavedCandidatesService
	LLM             *services.LLMService
}

// NewServices builds every record service over one client. Saved items belong
// to userID.
func NewServices(client records.Client, llm *services.LLMService, log *zap.Logger, userID int64) *Services {
	return &Services{
		Jobs:            services.NewJobService(client, log),
		Candidates:      services.NewCandidateService(client, log),
		Companies:       services.NewCompanyService(client, log),
		Applications:    services.NewApplicationService(client, log),
		Messages:        services.NewMessageService(client, log),
		SavedJobs:       services.NewSavedJobsService(client, log, userID),
		SavedCandidates: services.NewSavedCandidatesService(client, log, userID),
		LLM:             llm,
	}
}

// RouterConfig holds the HTTP-level settings.
type RouterConfig struct {
	CORSAllowOrigins []string
}

// NewRouter wires middleware and every /api/v1 route.
func NewRouter(svc *Services, cfg RouterConfig, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(logger.RequestID(), logger.GinMiddleware(log), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	api := r.Group("/api/v1")
	api.GET("/health", HealthCheck)

	NewJobHandler(svc.LLM, svc.Jobs, log).Register(api.Group("/jobs"))
	NewCRUDHandler[dtos.CandidateInput](svc.Candidates, "candidate").Register(api.Group("/candidates"))
	NewCRUDHandler[dtos.CompanyInput](svc.Companies, "company").Register(api.Group("/companies"))
	NewCRUDHandler[dtos.ApplicationInput](svc.Applications, "application").Register(api.Group("/applications"))
	NewMessageHandler(svc.Messages).Register(api)
	NewSavedJobsHandler(svc.SavedJobs).Register(api.Group("/saved-jobs"))
	NewSavedCandidatesHandler(svc.SavedCandidates).Register(api.Group("/saved-candidates"))

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", logger.RequestIDHeader}
	config.ExposeHeaders = []string{logger.RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}
