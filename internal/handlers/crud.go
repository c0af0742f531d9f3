package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/records"
)

// RecordService is the shape shared by the job, candidate, company and
// application services. In is the service's input DTO.
type RecordService[In any] interface {
	GetAll(ctx context.Context) []records.Record
	GetByID(ctx context.Context, id int64) records.Record
	Create(ctx context.Context, in *In) records.Record
	Update(ctx context.Context, id int64, in *In) records.Record
	Delete(ctx context.Context, id int64) bool
}

// CRUDHandler serves the five record routes for one table.
type CRUDHandler[In any] struct {
	Service RecordService[In]
	noun    string
}

func NewCRUDHandler[In any](svc RecordService[In], noun string) *CRUDHandler[In] {
	return &CRUDHandler[In]{Service: svc, noun: noun}
}

func (h *CRUDHandler[In]) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *CRUDHandler[In]) List(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetAll(c.Request.Context()))
}

func (h *CRUDHandler[In]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec := h.Service.GetByID(c.Request.Context(), id)
	if rec == nil {
		fail(c, http.StatusNotFound, h.noun+" not found")
		return
	}
	respond(c, http.StatusOK, rec)
}

func (h *CRUDHandler[In]) Create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	rec := h.Service.Create(c.Request.Context(), &in)
	if rec == nil {
		fail(c, http.StatusBadGateway, "Failed to create "+h.noun)
		return
	}
	respond(c, http.StatusCreated, rec)
}

func (h *CRUDHandler[In]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	rec := h.Service.Update(c.Request.Context(), id, &in)
	if rec == nil {
		fail(c, http.StatusBadGateway, "Failed to update "+h.noun)
		return
	}
	respond(c, http.StatusOK, rec)
}

// Delete answers 404 when nothing was deleted.
func (h *CRUDHandler[In]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.Service.Delete(c.Request.Context(), id) {
		fail(c, http.StatusNotFound, h.noun+" not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
