package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prepdrill/prepdrill/internal/session"
	"github.com/prepdrill/prepdrill/pkg/model"
	"github.com/prepdrill/prepdrill/pkg/response"
)

const defaultNumQuestions = 3

func (h *Handler) StartInterview(c *gin.Context) {
	var req model.StartInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.NumQuestions <= 0 {
		req.NumQuestions = defaultNumQuestions
	}

	res := h.Engine.Start(c.Request.Context(), req.Role, req.Domain, req.InterviewType, req.Difficulty, req.NumQuestions)
	if res.Completed {
		// the provider had nothing for this selection
		h.Logger.Sugar().Warnw("started session with no questions",
			"role", req.Role, "domain", req.Domain, "type", req.InterviewType)
		response.OK(c, gin.H{
			"session_id": res.SessionID,
			"completed":  true,
			"message":    "No questions available for this selection.",
		})
		return
	}

	response.Created(c, res)
}

func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Engine.SubmitAnswer(c.Request.Context(), req.Answer)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.OK(c, res)
}

func (h *Handler) SkipQuestion(c *gin.Context) {
	res, err := h.Engine.Skip(c.Request.Context())
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.OK(c, res)
}

func (h *Handler) RetryQuestion(c *gin.Context) {
	question, err := h.Engine.Retry()
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.OK(c, gin.H{"question": question})
}

func (h *Handler) CurrentSession(c *gin.Context) {
	st, err := h.Engine.Snapshot()
	if err != nil {
		h.transitionError(c, err)
		return
	}

	out := gin.H{
		"session_id":      st.ID,
		"role":            st.Role,
		"domain":          st.Domain,
		"interview_type":  st.InterviewType,
		"difficulty":      st.Difficulty,
		"status":          st.Status,
		"current_index":   st.Index,
		"total_questions": len(st.Questions),
		"scores":          st.Scores,
	}
	if st.Status == session.StatusInProgress {
		out["current_question"] = st.Questions[st.Index]
	}
	response.OK(c, out)
}

func (h *Handler) GetReport(c *gin.Context) {
	rep, err := h.Engine.Report()
	if err != nil {
		h.transitionError(c, err)
		return
	}
	response.OK(c, rep)
}

// SaveSession writes the transcript to disk and, when an archive repository
// is configured, mirrors it to Postgres. A failed write is reported in the
// body, never as a dropped session: in-memory state is untouched either way.
func (h *Handler) SaveSession(c *gin.Context) {
	rec, err := h.Engine.Record()
	if err != nil {
		h.transitionError(c, err)
		return
	}

	name, err := h.Store.SaveSession(rec)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to save session", "err", err)
		response.OK(c, gin.H{"saved": false})
		return
	}

	out := gin.H{"saved": true, "filename": name}
	if h.Archive != nil {
		if err := h.Archive.ArchiveSession(c.Request.Context(), rec); err != nil {
			h.Logger.Sugar().Warnw("failed to archive session", "session_id", rec.SessionInfo.SessionID, "err", err)
			out["archived"] = false
		} else {
			out["archived"] = true
		}
	}
	response.OK(c, out)
}
