package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/logger"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/zap"
)

// JobHandler adds posting extraction to the job routes.
type JobHandler struct {
	*CRUDHandler[dtos.JobInput]
	LLMService *services.LLMService
	log        *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(llm *services.LLMService, jobs *services.JobService, log *zap.Logger) *JobHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobHandler{
		CRUDHandler: NewCRUDHandler[dtos.JobInput](jobs, "job"),
		LLMService:  llm,
		log:         log,
	}
}

func (h *JobHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/extract", h.ParseJob)
	h.CRUDHandler.Register(rg)
}

// ParseJob is the POST /jobs/extract endpoint. The draft is returned, not saved.
func (h *JobHandler) ParseJob(c *gin.Context) {
	var req dtos.JobExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	draft, err := h.LLMService.ExtractJobDetails(c.Request.Context(), req.RawHTML)
	if errors.Is(err, services.ErrExtractionDisabled) {
		fail(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		logger.FromContext(c, h.log).Error("Job extraction failed", zap.String("url", req.URL), zap.Error(err))
		fail(c, http.StatusInternalServerError, "AI Extraction failed: "+err.Error())
		return
	}
	respond(c, http.StatusOK, draft)
}
