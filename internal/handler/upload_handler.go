package handler

import (
	"net/http"

	"anoa.com/classsite/pkg/response"
	"anoa.com/classsite/pkg/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	storage storage.MediaStorage
}

func NewUploadHandler(storage storage.MediaStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{Success: false, Error: "media storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := h.storage.Upload(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "File uploaded successfully", gin.H{"url": url})
}
