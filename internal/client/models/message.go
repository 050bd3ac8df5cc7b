package models

import "time"

// Severity classifies an assistant response for presentation. The UI keys
// off this value instead of scanning the text for marker substrings.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the chat history kept by the CLI.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Severity  Severity
	CreatedAt time.Time
}
