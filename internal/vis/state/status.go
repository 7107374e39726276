package state

import "fmt"

// NoticeKind classifies a status notice.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeError
)

// Status holds the text shown in the status bar.
type Status struct {
	document   string
	pageLabel  string
	notice     string
	noticeKind NoticeKind
}

// StatusSnapshot is a copy of Status.
type StatusSnapshot struct {
	Document   string
	PageLabel  string
	Notice     string
	NoticeKind NoticeKind
}

// NewStatus creates an empty status.
func NewStatus() *Status {
	return &Status{}
}

// SetDocument records the name of the loaded document.
func (s *Status) SetDocument(name string) {
	s.document = name
}

// SetPage sets the page indicator after a page has been shown.
func (s *Status) SetPage(page, count int) {
	s.pageLabel = PageLabel(page, count)
}

// Notify replaces the current notice.
func (s *Status) Notify(kind NoticeKind, format string, args ...any) {
	s.noticeKind = kind
	s.notice = fmt.Sprintf(format, args...)
}

// ClearNotice removes the current notice.
func (s *Status) ClearNotice() {
	s.notice, s.noticeKind = "", NoticeNone
}

// Snapshot copies the status.
func (s *Status) Snapshot() StatusSnapshot {
	return StatusSnapshot{
		Document:   s.document,
		PageLabel:  s.pageLabel,
		Notice:     s.notice,
		NoticeKind: s.noticeKind,
	}
}

// PageLabel formats the page indicator.
func PageLabel(page, count int) string {
	return fmt.Sprintf("Page %d / %d", page, count)
}
