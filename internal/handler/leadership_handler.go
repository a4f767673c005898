package handler

import (
	"anoa.com/classsite/internal/dto"
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeadershipHandler struct {
	service service.LeadershipService
}

func NewLeadershipHandler(service service.LeadershipService) *LeadershipHandler {
	return &LeadershipHandler{service: service}
}

func (h *LeadershipHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !bindQuery(c, &query) {
		return
	}
	query.Normalize(10)

	members, total, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, members, query.Page, query.Limit, total)
}

func (h *LeadershipHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	member, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, member)
}

func (h *LeadershipHandler) Create(c *gin.Context) {
	var req dto.CreateLeadershipMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Leadership member created successfully", member)
}

func (h *LeadershipHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateLeadershipMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMessage(c, "Leadership member updated successfully", member)
}

func (h *LeadershipHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Leadership member deleted successfully")
}

func (h *LeadershipHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Leadership order updated successfully")
}
