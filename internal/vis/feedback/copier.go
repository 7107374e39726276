// Package feedback copies coordinates to the clipboard and tracks the
// transient acknowledgement shown afterwards.
package feedback

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
	"github.com/elektrokombinacija/pdfcoord/internal/logging"
)

// AckDuration is how long an acknowledgement stays visible.
const AckDuration = 1200 * time.Millisecond

// Ack is the acknowledgement currently shown.
type Ack int

const (
	AckNone Ack = iota
	AckCopied
	AckFailed
)

func (a Ack) String() string {
	switch a {
	case AckCopied:
		return "Copied"
	case AckFailed:
		return "Copy failed"
	default:
		return ""
	}
}

// Timer is the part of *time.Timer the copier uses.
type Timer interface {
	Stop() bool
}

// WriteFunc writes text to the clipboard.
type WriteFunc func(text string) error

// Copier writes coordinates to the clipboard. Writes run off the UI
// goroutine; Ack and Text may be called from any goroutine.
type Copier struct {
	write  WriteFunc
	notify func()

	// replaced in tests
	afterFunc func(d time.Duration, f func()) Timer
	run       func(f func())

	mu    sync.Mutex
	seq   uint64
	ack   Ack
	text  string
	timer Timer
}

// NewCopier creates a copier. A nil write uses the system clipboard.
// notify, if not nil, is called whenever the acknowledgement changes.
func NewCopier(write WriteFunc, notify func()) *Copier {
	if write == nil {
		write = clipboard.WriteAll
	}
	return &Copier{
		write:  write,
		notify: notify,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		run: func(f func()) { go f() },
	}
}

// Copy formats p as "(X.XXcm,Y.YYcm)" and writes it to the clipboard. It
// returns the formatted text.
func (c *Copier) Copy(p core.Point) string {
	text := core.FormatCM(p)

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	c.run(func() {
		c.finish(seq, text, c.write(text))
	})
	return text
}

func (c *Copier) finish(seq uint64, text string, err error) {
	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.text = text
	c.ack = AckCopied
	if err != nil {
		c.ack = AckFailed
		logging.Logger().Warn("feedback: clipboard write failed", "text", text, "err", err)
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.afterFunc(AckDuration, func() { c.expire(seq) })
	c.mu.Unlock()

	c.changed()
}

func (c *Copier) expire(seq uint64) {
	c.mu.Lock()
	if seq != c.seq || c.ack == AckNone {
		c.mu.Unlock()
		return
	}
	c.ack = AckNone
	c.timer = nil
	c.mu.Unlock()

	c.changed()
}

func (c *Copier) changed() {
	if c.notify != nil {
		c.notify()
	}
}

// Ack returns the acknowledgement to show.
func (c *Copier) Ack() Ack {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ack
}

// Text returns the last text handed to the clipboard.
func (c *Copier) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Stop cancels a pending acknowledgement timer.
func (c *Copier) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.ack = AckNone
}
