package handler

import (
	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
)

type ResetHandler struct {
	service service.ResetService
}

func NewResetHandler(service service.ResetService) *ResetHandler {
	return &ResetHandler{service: service}
}

func (h *ResetHandler) Reset(c *gin.Context) {
	target := c.Param("target")
	if err := h.service.Reset(c.Request.Context(), target); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Reset completed: "+target)
}

func (h *ResetHandler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Demo data seeded successfully")
}
