package handlers

import (
	"strconv"

	"github.com/megaxsolutions/syncorp-sub002/internal/adapters/syncorp"
	"github.com/megaxsolutions/syncorp-sub002/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler proxies files from the HRIS uploads store (medical
// certificates, coaching signatures)
type UploadHandler struct {
	client *syncorp.Client
	sess   syncorp.Session
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(client *syncorp.Client, sess syncorp.Session) *UploadHandler {
	return &UploadHandler{client: client, sess: sess}
}

// Get streams one uploaded file
// GET /api/v1/uploads/*
func (h *UploadHandler) Get(c *fiber.Ctx) error {
	path := c.Params("*")
	if path == "" {
		return response.BadRequest(c, "file path is required")
	}

	upload, err := h.client.GetUpload(c.Context(), h.sess, path)
	if err != nil {
		return serviceError(c, err, "Failed to fetch file")
	}

	if upload.ContentType != "" {
		c.Set(fiber.HeaderContentType, upload.ContentType)
	}
	if upload.Length > 0 {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(upload.Length, 10))
	}
	return c.SendStream(upload.Body)
}
