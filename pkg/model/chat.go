package model

// ChatTurn is one user/assistant exchange. Assistant may be empty for the
// turn currently being answered.
type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant,omitempty"`
}

type ChatReq struct {
	Message string     `json:"message"`
	JobRole string     `json:"job_role"`
	History []ChatTurn `json:"history"`
}

type SaveChatReq struct {
	JobRole string     `json:"job_role"`
	History []ChatTurn `json:"history"`
}

// ConversationRecord is the on-disk shape of a saved practice chat.
type ConversationRecord struct {
	JobRole      string     `json:"job_role"`
	Timestamp    string     `json:"timestamp"`
	Conversation []ChatTurn `json:"conversation"`
}

func (r *ConversationRecord) Normalize() {
	if r.JobRole == "" {
		r.JobRole = "Unknown"
	}
	if r.Conversation == nil {
		r.Conversation = []ChatTurn{}
	}
}
