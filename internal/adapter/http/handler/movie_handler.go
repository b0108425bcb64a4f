package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	. "cadastro/internal/adapter/http/helper"
	"cadastro/internal/core/model/request"
	"cadastro/internal/core/model/response"
	"cadastro/internal/core/port"
	"cadastro/pkg/logger"
	. "cadastro/pkg/tracing"
)

type MovieHandler struct {
	svc    port.MovieService
	Logger *logger.Logger
}

func NewMovieHandler(svc port.MovieService, log *logger.Logger) *MovieHandler {
	if log == nil {
		log = logger.NewNop()
	}

	return &MovieHandler{
		svc:    svc,
		Logger: log,
	}
}

func (h *MovieHandler) Create(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "movie", "Create", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	var params request.CreateMovieRequest

	if !bindStrict(c, &params) {
		AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusBadRequest)
		return
	}

	movie, err := h.svc.Create(ctx, params.ToDomain())

	if err != nil {
		h.fail(c, span, "Failed to create movie", err)
		return
	}

	span.SetAttributes(attribute.Int64("movie.id", movie.ID))
	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusCreated)

	SendSuccess(c, http.StatusCreated, response.NewMovieResponse(movie))
}

func (h *MovieHandler) FindAll(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "movie", "FindAll", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	movies, err := h.svc.FindAll(ctx)

	if err != nil {
		h.fail(c, span, "Failed to list movies", err)
		return
	}

	span.SetAttributes(attribute.Int("movie.count", len(movies)))
	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewMovieListResponse(movies))
}

func (h *MovieHandler) FindOne(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "movie", "FindOne", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	movie, err := h.svc.FindOne(ctx, id)

	if err != nil {
		h.fail(c, span, "Failed to get movie", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewMovieResponse(movie))
}

func (h *MovieHandler) Update(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "movie", "Update", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	var params request.UpdateMovieRequest

	if !bindStrict(c, &params) {
		AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusBadRequest)
		return
	}

	movie, err := h.svc.Update(ctx, id, params.ToPatch())

	if err != nil {
		h.fail(c, span, "Failed to update movie", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusOK)

	SendSuccess(c, http.StatusOK, response.NewMovieResponse(movie))
}

func (h *MovieHandler) Remove(c *gin.Context) {
	ctx, span := HandlerSpan(c.Request.Context(), "movie", "Remove", c.Request.Method, c.FullPath())
	defer span.End()

	c.Request = c.Request.WithContext(ctx)

	id, ok := ParseID(c)

	if !ok {
		return
	}

	if err := h.svc.Remove(ctx, id); err != nil {
		h.fail(c, span, "Failed to delete movie", err)
		return
	}

	AddHTTPAttributes(span, c.Request.Method, c.FullPath(), http.StatusNoContent)

	SendNoContent(c)
}

func (h *MovieHandler) fail(c *gin.Context, span trace.Span, msg string, err error) {
	reportError(c, h.Logger, span, msg, err)
}
