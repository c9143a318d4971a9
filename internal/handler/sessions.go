package handler

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prepdrill/prepdrill/pkg/response"
)

func (h *Handler) ListSessions(c *gin.Context) {
	names, err := h.Store.ListSessions()
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list sessions", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"sessions": names, "total": len(names)})
}

func (h *Handler) GetSession(c *gin.Context) {
	name := c.Param("name")
	rec, err := h.Store.LoadSession(name)
	if err != nil {
		if os.IsNotExist(err) {
			response.NotFound(c, "session not found")
			return
		}
		h.Logger.Sugar().Errorw("failed to load session", "name", name, "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, rec)
}

// ArchivedSessions lists recent rows from the Postgres archive, when one is
// configured.
func (h *Handler) ArchivedSessions(c *gin.Context) {
	if h.Archive == nil {
		response.NotFound(c, "session archive is not configured")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	sessions, err := h.Archive.RecentSessions(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to list archived sessions", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"sessions": sessions, "total": len(sessions)})
}
