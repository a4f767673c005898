package handler

import (
	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service service.ContactService
}

func NewContactHandler(service service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Message sent successfully", msg)
}

func (h *ContactHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}
	query.Normalize(10)

	msgs, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, msgs, query.Page, query.Limit, total)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Contact message deleted successfully")
}
