package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler delivers msg after d. Steps take one so tests can observe the
// requested delay without waiting for it.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules msg with tea.Tick.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

var lastFlashID int64

func nextFlashID() int64 {
	return atomic.AddInt64(&lastFlashID, 1)
}

// Flash is a single error message that hides itself after a fixed time.
// Every Show, Clear or Reset takes a new ID so an expiry scheduled for an
// older message never hides a newer one.
type Flash struct {
	text     string
	id       int64
	ttl      time.Duration
	schedule Scheduler
}

// NewFlash creates a Flash that stays visible for ttl.
func NewFlash(ttl time.Duration, schedule Scheduler) Flash {
	if schedule == nil {
		schedule = TickScheduler
	}
	return Flash{ttl: ttl, schedule: schedule}
}

// Show displays text and returns the command that will expire it.
func (f *Flash) Show(text string) tea.Cmd {
	f.id = nextFlashID()
	f.text = text
	return f.schedule(f.ttl, FlashExpiredMsg{ID: f.id})
}

// Clear hides the message now and cancels its pending expiry.
func (f *Flash) Clear() {
	f.id = nextFlashID()
	f.text = ""
}

// Update hides the message when msg is the expiry of the visible message.
// It reports whether msg was a FlashExpiredMsg.
func (f *Flash) Update(msg tea.Msg) bool {
	m, ok := msg.(FlashExpiredMsg)
	if !ok {
		return false
	}
	if m.ID == f.id {
		f.text = ""
	}
	return true
}

// Text returns the visible message, or "" when nothing is shown.
func (f Flash) Text() string { return f.text }

// Visible reports whether a message is shown.
func (f Flash) Visible() bool { return f.text != "" }

// TTL returns how long a message stays visible.
func (f Flash) TTL() time.Duration { return f.ttl }
