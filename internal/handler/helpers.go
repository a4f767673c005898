package handler

import (
	"net/http"

	"anoa.com/classsite/pkg/response"
	validation "anoa.com/classsite/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON binds the body and reports itemized validation failures.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.ValidationFailed(c, validation.FormatDetails(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.ValidationFailed(c, validation.FormatDetails(err))
		return false
	}
	return true
}

// parseID reads the :id path parameter as a UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid id format"})
		return uuid.Nil, false
	}
	return id, true
}
