package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cadastro/internal/adapter/http/validation"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/model/response"
)

const (
	messageValidation = "Dados inválidos"
	messageInternal   = "Erro interno do servidor"
)

func SendSuccess(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SendError writes the error body; message is always present.
func SendError(c *gin.Context, statusCode int, message string, errors []response.ValidationError) {
	c.AbortWithStatusJSON(statusCode, response.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Error:      http.StatusText(statusCode),
		Errors:     errors,
	})
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)

	message := messageValidation

	if len(validationErrors) > 0 {
		message = validationErrors[0].Message
	}

	SendError(c, http.StatusBadRequest, message, validationErrors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, message, errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message, nil)
}

func SendConflictError(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, message, nil)
}

func SendInternalError(c *gin.Context, err error) {
	if err != nil {
		c.Error(err)
	}

	SendError(c, http.StatusInternalServerError, messageInternal, nil)
}

// SendDomainError maps an error from the service layer to its HTTP status.
func SendDomainError(c *gin.Context, err error) {
	var de *domain.Error

	if !errors.As(err, &de) {
		SendInternalError(c, err)
		return
	}

	switch {
	case errors.Is(de.Kind, domain.ErrValidation):
		if de.Field != "" {
			SendBadRequestError(c, de.Field, de.Message)
			return
		}

		SendError(c, http.StatusBadRequest, messageValidation, nil)
	case errors.Is(de.Kind, domain.ErrNotFound):
		SendNotFoundError(c, de.Message)
	case errors.Is(de.Kind, domain.ErrConflict):
		SendConflictError(c, domain.Message(err))
	default:
		SendInternalError(c, err)
	}
}
