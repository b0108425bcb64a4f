package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestIndex(t *testing.T) {
	RegisterTestingT(t)
	gin.SetMode(gin.TestMode)

	h, err := NewHandler()
	Expect(err).ToNot(HaveOccurred())

	router := gin.New()
	router.GET("/", h.Index)

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
	Expect(rr.Body.String()).To(ContainSubstring(`fetch(API_BASE_URL + path`))
	Expect(rr.Body.String()).To(ContainSubstring(`"/filmes"`))
	Expect(rr.Body.String()).To(ContainSubstring("window.confirm"))
}
