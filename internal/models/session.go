package models

// SessionState is the authentication view of a session. Username is set
// exactly when Authenticated is true.
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

func (s SessionState) Valid() bool {
	return s.Authenticated == (s.Username != "")
}

type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Level   FlashLevel
	Message string
}
