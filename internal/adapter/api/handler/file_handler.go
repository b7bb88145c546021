package handler

import (
	"github.com/labstack/echo/v4"

	"osta/internal/infrastructure/storage"
	"osta/pkg/errors"
	"osta/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{storageClient: storageClient}
}

// Upload accepts a multipart file and stores it as an avatar image.
func (h *FileHandler) Upload(c echo.Context) error {
	return h.upload(c, "avatars")
}

// UploadChat stores a chat attachment; the returned URL becomes the
// message's fileUrl.
func (h *FileHandler) UploadChat(c echo.Context) error {
	return h.upload(c, "chat")
}

func (h *FileHandler) upload(c echo.Context, folder string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadFile(
		c.Request().Context(), src, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"url": url})
}

type deleteFileRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *FileHandler) Delete(c echo.Context) error {
	var req deleteFileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.storageClient.DeleteFile(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "File deleted"})
}
