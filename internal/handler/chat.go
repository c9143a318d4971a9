package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prepdrill/prepdrill/internal/coach"
	"github.com/prepdrill/prepdrill/pkg/model"
	"github.com/prepdrill/prepdrill/pkg/response"
)

// Chat relays one turn of the free-form practice conversation. A blank
// message on an empty history opens the interview with the standard greeting
// for the given role. Model failures come back as a plain string reply so
// the conversation survives them.
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		if len(req.History) == 0 && req.JobRole != "" {
			response.OK(c, gin.H{"reply": coach.Greeting(req.JobRole)})
			return
		}
		response.BadRequest(c, "message is required")
		return
	}

	reply, err := h.Coach.Reply(c.Request.Context(), req.JobRole, req.Message, req.History)
	if err != nil {
		h.Logger.Sugar().Warnw("chat reply failed", "err", err)
		reply = fmt.Sprintf("Error generating response: %v", err)
	}
	response.OK(c, gin.H{"reply": reply})
}

func (h *Handler) SaveChat(c *gin.Context) {
	var req model.SaveChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(req.History) == 0 {
		response.BadRequest(c, "No conversation to save.")
		return
	}

	rec := model.ConversationRecord{
		JobRole:      req.JobRole,
		Conversation: req.History,
	}
	name, err := h.Store.SaveConversation(&rec)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to save conversation", "err", err)
		response.OK(c, gin.H{"saved": false})
		return
	}
	response.OK(c, gin.H{"saved": true, "filename": name})
}
