package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	. "cadastro/internal/adapter/http/helper"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/model/request"
	"cadastro/internal/core/model/response"
	"cadastro/internal/core/port"
	"cadastro/pkg/logger"
	. "cadastro/pkg/tracing"
)

type UserHandler struct {
	svc    port.UserService
	Logger *logger.Logger
}

func NewUserHandler(svc port.UserService, log *logger.Logger) *UserHandler {
	if log == nil {
		log = logger.NewNop()
	}

	return &UserHandler{
		svc:    svc,
		Logger: log,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "user", "Create", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	var params request.CreateUserRequest

	if !bindStrict(c, &params) {
		AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusBadRequest)
		return
	}

	user, err := h.svc.Create(ctx, params.ToDomain())

	if err != nil {
		h.fail(c, span, "Failed to create user", err)
		return
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusCreated)

	SendSuccess(c, http.StatusCreated, response.NewUserResponse(user))
}

func (h *UserHandler) FindAll(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "user", "FindAll", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	active, ok := parseActive(c)

	if !ok {
		return
	}

	users, err := h.svc.FindAll(ctx, domain.UserFilter{Active: active})

	if err != nil {
		h.fail(c, span, "Failed to list users", err)
		return
	}

	span.SetAttributes(attribute.Int("user.count", len(users)))
	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewUserListResponse(users))
}

func (h *UserHandler) FindOne(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "user", "FindOne", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	user, err := h.svc.FindOne(ctx, id)

	if err != nil {
		h.fail(c, span, "Failed to get user", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "user", "Update", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	var params request.UpdateUserRequest

	if !bindStrict(c, &params) {
		AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusBadRequest)
		return
	}

	user, err := h.svc.Update(ctx, id, params.ToPatch())

	if err != nil {
		h.fail(c, span, "Failed to update user", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) Remove(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "user", "Remove", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	if err := h.svc.Remove(ctx, id); err != nil {
		h.fail(c, span, "Failed to delete user", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusNoContent)

	SendNoContent(c)
}

func (h *UserHandler) fail(c *gin.Context, span trace.Span, msg string, err error) {
	reportError(c, h.Logger, span, msg, err)
}
