package handler

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	. "cadastro/internal/adapter/http/helper"
	"cadastro/internal/core/domain"
	"cadastro/pkg/logger"
	. "cadastro/pkg/tracing"
)

// reportError writes the error response. Storage failures are logged and
// marked on the span, expected outcomes like not found are not.
func reportError(c *gin.Context, log *logger.Logger, span trace.Span, msg string, err error) {
	if !domain.IsValidation(err) && !domain.IsNotFound(err) && !domain.IsConflict(err) {
		AddSpanError(span, err)
		log.ErrorWithTrace(c.Request.Context(), msg,
			zap.Error(err),
			zap.String("path", c.FullPath()),
		)
	}

	SendDomainError(c, err)
}
