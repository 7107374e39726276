package feedback

import (
	"errors"
	"testing"
	"time"

	"github.com/elektrokombinacija/pdfcoord/internal/core"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) afterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func newTestCopier(write WriteFunc) (*Copier, *fakeClock, *int) {
	clock := &fakeClock{}
	notified := new(int)
	c := NewCopier(write, func() { *notified++ })
	c.afterFunc = clock.afterFunc
	c.run = func(f func()) { f() }
	return c, clock, notified
}

func TestCopyFormatsAndAcknowledges(t *testing.T) {
	var written []string
	c, clock, notified := newTestCopier(func(s string) error {
		written = append(written, s)
		return nil
	})

	p := core.ToDocumentUnits(core.Point{X: 108, Y: 72}, 1.5)
	if got := c.Copy(p); got != "(2.54cm,1.69cm)" {
		t.Errorf("Copy() = %q, want (2.54cm,1.69cm)", got)
	}
	if len(written) != 1 || written[0] != "(2.54cm,1.69cm)" {
		t.Errorf("clipboard got %q", written)
	}
	if c.Ack() != AckCopied || c.Ack().String() != "Copied" {
		t.Errorf("Ack() = %v, want Copied", c.Ack())
	}
	if len(clock.timers) != 1 || clock.timers[0].d != AckDuration {
		t.Fatalf("timers = %+v, want one %v timer", clock.timers, AckDuration)
	}

	clock.timers[0].f()
	if c.Ack() != AckNone {
		t.Errorf("Ack() after timeout = %v, want none", c.Ack())
	}
	if *notified != 2 {
		t.Errorf("notify calls = %d, want 2", *notified)
	}
}

func TestCopyRestartsTimer(t *testing.T) {
	c, clock, _ := newTestCopier(func(string) error { return nil })

	c.Copy(core.Point{X: 1, Y: 1})
	c.Copy(core.Point{X: 2, Y: 2})

	if len(clock.timers) != 2 {
		t.Fatalf("timers = %d, want 2", len(clock.timers))
	}
	if !clock.timers[0].stopped {
		t.Error("first timer not cancelled by the second copy")
	}

	// A stale timer firing anyway must not end the new acknowledgement.
	clock.timers[0].f()
	if c.Ack() != AckCopied {
		t.Errorf("Ack() after stale timer = %v, want Copied", c.Ack())
	}
	if got := c.Text(); got != "(2.00cm,2.00cm)" {
		t.Errorf("Text() = %q", got)
	}
	clock.timers[1].f()
	if c.Ack() != AckNone {
		t.Errorf("Ack() = %v, want none", c.Ack())
	}
}

func TestCopyFailureIsNonFatal(t *testing.T) {
	c, clock, _ := newTestCopier(func(string) error { return errors.New("no clipboard") })

	c.Copy(core.Point{})
	if c.Ack() != AckFailed || c.Ack().String() != "Copy failed" {
		t.Errorf("Ack() = %v, want Copy failed", c.Ack())
	}
	clock.timers[0].f()
	if c.Ack() != AckNone {
		t.Errorf("Ack() after timeout = %v", c.Ack())
	}
}

func TestSupersededWriteIgnored(t *testing.T) {
	var pending []func()
	c, clock, _ := newTestCopier(func(string) error { return nil })
	c.run = func(f func()) { pending = append(pending, f) }

	c.Copy(core.Point{X: 1})
	c.Copy(core.Point{X: 2})
	pending[1]()
	pending[0]()

	if got := c.Text(); got != "(2.00cm,0.00cm)" {
		t.Errorf("Text() = %q, want the second copy", got)
	}
	if len(clock.timers) != 1 {
		t.Errorf("timers = %d, want 1", len(clock.timers))
	}
}
