package model

// StartInterviewReq begins a new practice session, replacing any active one.
type StartInterviewReq struct {
	Role          string `json:"role" binding:"required"`
	Domain        string `json:"domain"`
	InterviewType string `json:"interview_type" binding:"required"`
	Difficulty    string `json:"difficulty"`
	NumQuestions  int    `json:"num_questions"`
}

type SubmitAnswerReq struct {
	Answer string `json:"answer"`
}

// SessionInfo is the metadata block of a saved transcript.
type SessionInfo struct {
	SessionID     string   `json:"session_id,omitempty"`
	Role          string   `json:"role"`
	Domain        string   `json:"domain,omitempty"`
	InterviewType string   `json:"interview_type"`
	Difficulty    string   `json:"difficulty,omitempty"`
	StartTime     string   `json:"start_time"`
	Questions     []string `json:"questions"`
}

// SessionRecord is the on-disk shape of one saved session. Answers, feedback
// and scores are parallel slices, one entry per processed question.
type SessionRecord struct {
	SessionInfo SessionInfo `json:"session_info"`
	Answers     []string    `json:"answers"`
	Feedback    []string    `json:"feedback"`
	Scores      []int       `json:"scores"`
	Report      string      `json:"report"`
}

// Normalize fills defaults for fields older files may lack.
func (r *SessionRecord) Normalize() {
	if r.SessionInfo.Role == "" {
		r.SessionInfo.Role = "Unknown"
	}
	if r.SessionInfo.Questions == nil {
		r.SessionInfo.Questions = []string{}
	}
	if r.Answers == nil {
		r.Answers = []string{}
	}
	if r.Feedback == nil {
		r.Feedback = []string{}
	}
	if r.Scores == nil {
		r.Scores = []int{}
	}
}
