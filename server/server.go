package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuckoo711/notepreview/parse"
	"github.com/cuckoo711/notepreview/parse/title"
)

// PreviewHandler exposes the preview core over REST. The handler holds no
// per-request state: every call recomputes the model from the posted text.
// File storage, auth and rendering stay with the host application.
type PreviewHandler struct {
	translator *title.Translator
}

func NewPreviewHandler(r *gin.Engine, translator *title.Translator) *PreviewHandler {
	handler := &PreviewHandler{translator: translator}

	group := r.Group("/api")
	group.POST("/preview", handler.Preview)
	r.GET("/healthz", handler.Health)

	return handler
}

type previewRequest struct {
	Content string `json:"content"`
}

func (h *PreviewHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, parse.BuildPreview(req.Content, h.translator))
}

func (h *PreviewHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Serve runs the REST surface until the listener fails. The dictionary
// warm-up happens in the background; previews served before it resolves
// fall back to the built-in labels.
func Serve(addr string, translator *title.Translator) error {
	translator.Warm(context.Background())

	r := gin.Default()
	NewPreviewHandler(r, translator)
	return r.Run(addr)
}
