package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventsnow/booking-api/pkg/helpers"
	"github.com/eventsnow/booking-api/pkg/response"
)

// UploadHandler stores event images in a GCS bucket and hands back the
// public URL for use in the event upload payload.
type UploadHandler struct {
	GCS    *storage.Client
	Bucket string
	Logger *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, bucket string, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Bucket: bucket, Logger: logger}
}

// Image POST /uploads/image (token required, multipart field "image")
func (h *UploadHandler) Image(c *gin.Context) {
	if h.GCS == nil || h.Bucket == "" {
		response.Fail(c, http.StatusServiceUnavailable, "image storage not configured")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "image file is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "image file is not readable")
		return
	}
	defer func() { _ = f.Close() }()

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.Fail(c, http.StatusBadRequest, "file must be an image")
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	objectPath := filepath.ToSlash(filepath.Join("events", uuid.NewString()+ext))

	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, objectPath, contentType, f)
	if err != nil {
		h.Logger.WithError(err).WithField("object", objectPath).Error("image upload failed")
		response.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	response.OK(c, gin.H{"url": url})
}
