package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

func (h *MessageHandler) Register(api *gin.RouterGroup) {
	conv := api.Group("/conversations")
	conv.GET("", h.ListConversations)
	conv.POST("", h.StartConversation)
	conv.GET("/:id/messages", h.ListMessages)
	conv.POST("/:id/messages", h.PostMessage)

	api.POST("/messages/:id/read", h.MarkAsRead)
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetConversations(c.Request.Context()))
}

func (h *MessageHandler) StartConversation(c *gin.Context) {
	var in dtos.ConversationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	rec := h.Service.StartConversation(c.Request.Context(), &in)
	if rec == nil {
		fail(c, http.StatusBadGateway, "Failed to create conversation")
		return
	}
	respond(c, http.StatusCreated, rec)
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, h.Service.GetMessages(c.Request.Context(), id))
}

// PostMessage sends into the conversation named by the path; a body
// conversation id is ignored.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in dtos.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	in.ConversationIDC = dtos.FlexID(id)

	rec := h.Service.Create(c.Request.Context(), &in)
	if rec == nil {
		fail(c, http.StatusBadGateway, "Failed to send message")
		return
	}
	respond(c, http.StatusCreated, rec)
}

func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.Service.MarkAsRead(c.Request.Context(), id) {
		fail(c, http.StatusNotFound, "message not found")
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id, "read": true})
}
