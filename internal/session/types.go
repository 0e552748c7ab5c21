package session

import (
	"strings"
	"time"
)

// Role identifies who produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Session represents a chat session stored in the database.
type Session struct {
	ID        string    `json:"id"`
	Summary   string    `json:"summary,omitempty"` // First user message
	Role      string    `json:"role"`              // User role at session start (planner, responder, analyst)
	Borough   string    `json:"borough,omitempty"` // Borough focus, if any
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one turn in a session. Content is stored raw; formatting is
// re-applied at render time, never persisted.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Page      string    `json:"page,omitempty"`
	Tab       string    `json:"tab,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Sequence  int       `json:"sequence"`
}

// Summary is a lightweight view of a session for listing.
type Summary struct {
	ID           string    `json:"id"`
	Summary      string    `json:"summary,omitempty"`
	Role         string    `json:"role"`
	Borough      string    `json:"borough,omitempty"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TruncateSummary returns the first line of content, truncated to 100 chars.
func TruncateSummary(content string) string {
	content = strings.TrimSpace(content)
	if idx := strings.Index(content, "\n"); idx != -1 {
		content = content[:idx]
	}
	if len(content) > 100 {
		content = content[:97] + "..."
	}
	return content
}
