package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	. "cadastro/internal/adapter/http/helper"
	"cadastro/internal/core/model/response"
	"cadastro/pkg/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	Logger *logger.Logger
}

func NewHealthHandler(db Pinger, log *logger.Logger) *HealthHandler {
	if log == nil {
		log = logger.NewNop()
	}

	return &HealthHandler{db: db, Logger: log}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.Logger.ErrorWithTrace(c.Request.Context(), "Health check failed", zap.Error(err))
		SendError(c, http.StatusServiceUnavailable, "Banco de dados indisponível", nil)
		return
	}

	SendSuccess(c, http.StatusOK, response.HealthResponse{Status: "ok"})
}
