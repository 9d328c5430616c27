package handler

import (
	"net/http"
	"strings"

	"pesona/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadBytes is the payload ceiling for image uploads.
const maxUploadBytes = 5 << 20

type UploadHandler struct {
	cloud cloudinary.Client
	log   *zap.Logger
}

func NewUploadHandler(cloud cloudinary.Client, log *zap.Logger) *UploadHandler {
	return &UploadHandler{cloud: cloud, log: log}
}

// Upload stores an image on the CDN and returns its public URL. Oversized
// and non-image payloads are rejected before touching the upstream.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file required")
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "file exceeds 5 MB limit")
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	folder := "pesona/" + sanitizeFolder(c.DefaultPostForm("folder", "general"))
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read file")
		return
	}
	defer f.Close()

	result, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		h.log.Error("image upload failed", zap.Error(err))
		respondError(c, http.StatusBadGateway, "upload failed")
		return
	}
	respondData(c, http.StatusOK, result)
}

func sanitizeFolder(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "general"
	}
	return b.String()
}
