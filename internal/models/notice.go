package models

import "time"

// NoticeKind classifies notice presentation.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient on-screen message (toast).
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	TimeoutMS int64      `json:"timeout_ms"`
}

// NewNotice builds a notice shown for the given duration.
func NewNotice(kind NoticeKind, title, message string, timeout time.Duration) Notice {
	return Notice{
		Kind:      kind,
		Title:     title,
		Message:   message,
		TimeoutMS: timeout.Milliseconds(),
	}
}
