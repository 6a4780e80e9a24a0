package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/httperr"
	"github.com/BruksfildServices01/traineme-api/internal/httpresp"
	"github.com/BruksfildServices01/traineme-api/internal/media"
	"github.com/BruksfildServices01/traineme-api/internal/middleware"
	ucmedia "github.com/BruksfildServices01/traineme-api/internal/usecase/media"
)

const imageField = "image"

var errMissingImage = httperr.Validation("missing_image", "Multipart field image is required.")

type MediaHandler struct {
	upload *ucmedia.UploadImage
}

func NewMediaHandler(upload *ucmedia.UploadImage) *MediaHandler {
	return &MediaHandler{upload: upload}
}

// Upload handles POST /api/me/images/:kind with a multipart "image" file.
func (h *MediaHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1<<20)

	fh, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, "upload_image", media.ErrImageTooLarge)
			return
		}
		httperr.Respond(c, "upload_image", errMissingImage)
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Respond(c, "upload_image", media.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, "upload_image", err)
		return
	}
	defer f.Close()

	url, err := h.upload.Execute(c.Request.Context(), middleware.Identity(c), c.Param("kind"), f)
	if err != nil {
		httperr.Respond(c, "upload_image", err)
		return
	}
	httpresp.OK(c, gin.H{"url": url})
}
