package handler

import (
	"net/http"

	"anoa.com/classsite/internal/service"
	"anoa.com/classsite/pkg/response"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetPage(c *gin.Context) {
	values, err := h.service.GroupGet(c.Request.Context(), c.Param("page"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, values)
}

func (h *SettingsHandler) PutPage(c *gin.Context) {
	var values map[string]any
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "request body must be a JSON object"})
		return
	}

	written, err := h.service.GroupPut(c.Request.Context(), c.Param("page"), values)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OKWithMessage(c, "Settings updated successfully", written)
}
