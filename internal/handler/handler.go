package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prepdrill/prepdrill/internal/coach"
	"github.com/prepdrill/prepdrill/internal/repository"
	"github.com/prepdrill/prepdrill/internal/session"
	"github.com/prepdrill/prepdrill/internal/store"
	"github.com/prepdrill/prepdrill/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	Logger  *zap.Logger
	Engine  *session.Engine
	Store   *store.FileStore
	Archive *repository.Repository // nil disables Postgres archiving
	Coach   *coach.Coach
}

// transitionError maps engine sentinel errors to user-facing messages. A
// transition attempted in the wrong state is a client mistake, not a server
// failure.
func (h *Handler) transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		response.Conflict(c, "Please start an interview first.")
	case errors.Is(err, session.ErrCompleted):
		response.Conflict(c, "The interview is already complete. Start a new one to keep practicing.")
	case errors.Is(err, session.ErrNothingToReport):
		response.Conflict(c, "No completed interview yet. Answer at least one question first.")
	default:
		h.Logger.Sugar().Errorw("unexpected engine error", "err", err)
		response.InternalError(c, "")
	}
}
