package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/services"
)

// SavedJobsHandler serves /saved-jobs. The :id is the job's id.
type SavedJobsHandler struct {
	Service *services.SavedJobsService
}

func NewSavedJobsHandler(svc *services.SavedJobsService) *SavedJobsHandler {
	return &SavedJobsHandler{Service: svc}
}

func (h *SavedJobsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/count", h.Count)
	rg.GET("/:id", h.Status)
	rg.POST("/:id", h.Add)
	rg.DELETE("/:id", h.Remove)
	rg.POST("/:id/toggle", h.Toggle)
}

func (h *SavedJobsHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetAll(c.Request.Context()))
}

func (h *SavedJobsHandler) Count(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"count": h.Service.Count(c.Request.Context())})
}

func (h *SavedJobsHandler) Status(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"job_id": id, "saved": h.Service.IsSaved(c.Request.Context(), id)})
}

// Add answers 409 when the job is already saved or could not be saved.
func (h *SavedJobsHandler) Add(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.Service.Add(c.Request.Context(), id) {
		fail(c, http.StatusConflict, "job not saved")
		return
	}
	respond(c, http.StatusCreated, gin.H{"job_id": id, "saved": true})
}

func (h *SavedJobsHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.Service.Remove(c.Request.Context(), id) {
		fail(c, http.StatusNotFound, "saved job not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"job_id": id, "saved": false})
}

func (h *SavedJobsHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"job_id": id, "saved": h.Service.Toggle(c.Request.Context(), id)})
}

// SavedCandidatesHandler serves /saved-candidates. The :id is the candidate's id.
type SavedCandidatesHandler struct {
	Service *services.SavedCandidatesService
}

func NewSavedCandidatesHandler(svc *services.SavedCandidatesService) *SavedCandidatesHandler {
	return &SavedCandidatesHandler{Service: svc}
}

func (h *SavedCandidatesHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/count", h.Count)
	rg.GET("/:id", h.Status)
	rg.POST("/:id", h.Add)
	rg.DELETE("/:id", h.Remove)
	rg.POST("/:id/toggle", h.Toggle)
}

func (h *SavedCandidatesHandler) List(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetAll(c.Request.Context()))
}

func (h *SavedCandidatesHandler) Count(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"count": h.Service.Count(c.Request.Context())})
}

// Status includes the bookmark itself when there is one.
func (h *SavedCandidatesHandler) Status(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec := h.Service.GetByCandidateID(c.Request.Context(), id)
	respond(c, http.StatusOK, gin.H{"candidate_id": id, "saved": rec != nil, "record": rec})
}

func (h *SavedCandidatesHandler) Add(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec := h.Service.Add(c.Request.Context(), id)
	if rec == nil {
		fail(c, http.StatusConflict, "candidate not saved")
		return
	}
	respond(c, http.StatusCreated, rec)
}

func (h *SavedCandidatesHandler) Remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.Service.Remove(c.Request.Context(), id) {
		fail(c, http.StatusNotFound, "saved candidate not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"candidate_id": id, "saved": false})
}

func (h *SavedCandidatesHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"candidate_id": id, "saved": h.Service.Toggle(c.Request.Context(), id)})
}
