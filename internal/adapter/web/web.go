package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var static embed.FS

// Handler serves the single page client.
type Handler struct {
	page []byte
}

func NewHandler() (*Handler, error) {
	page, err := static.ReadFile("static/index.html")

	if err != nil {
		return nil, err
	}

	return &Handler{page: page}, nil
}

func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}
