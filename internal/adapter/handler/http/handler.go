package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/eatsadmin/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is checked in order with errors.Is, so wrapped
// validation errors still map to their status.
var errorStatuses = []errorStatus{
	{domain.ErrInternal, http.StatusInternalServerError},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrInvalidThreshold, http.StatusBadRequest},

	{domain.ErrEmptyOrder, http.StatusUnprocessableEntity},
	{domain.ErrInvalidQuantity, http.StatusUnprocessableEntity},
	{domain.ErrNegativePrice, http.StatusUnprocessableEntity},
	{domain.ErrInvalidOrder, http.StatusUnprocessableEntity},
}

func statusFor(err error) (int, bool) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError answers 400 for a malformed request parameter.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.String("path", ctx.FullPath()), zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok || statusCode == http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, data)
}
