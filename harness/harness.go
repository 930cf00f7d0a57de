// Package harness implements the reporting side of an asynchronous
// conformance case: a description, pass/fail assertions, pixel comparison
// and a one-shot completion signal.
package harness

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"go.uber.org/multierr"
)

// ErrFinished is returned by Finish when the case already finished.
var ErrFinished = errors.New("case already finished")

// Result is the outcome of one assertion.
type Result struct {
	Pass    bool
	Message string
}

func (res Result) String() string {
	if res.Pass {
		return "PASS " + res.Message
	}
	return "FAIL " + res.Message
}

// Summary totals a case's assertions.
type Summary struct {
	Description string
	Passed      int
	Failed      int
	Finished    bool
}

// OK returns true if the case finished with no failed assertions.
func (sum Summary) OK() bool { return sum.Finished && sum.Failed == 0 }

func (sum Summary) String() string {
	status := "PASS"
	switch {
	case !sum.Finished:
		status = "UNFINISHED"
	case sum.Failed > 0:
		status = "FAIL"
	}
	return fmt.Sprintf("%s: %d passed, %d failed", status, sum.Passed, sum.Failed)
}

// Reporter receives harness events as they happen, one at a time and in
// order. Reporter methods may read the Harness (Summary, Err, Done), but must
// not record assertions or call Finish.
type Reporter interface {
	Describe(desc string)
	Report(res Result)
	Finished(sum Summary)
}

// Harness records the assertions of a single case. It is safe to use from
// callbacks running on other goroutines.
type Harness struct {
	repMu sync.Mutex // serializes reporter calls, held outside mu
	rep   Reporter

	mu   sync.Mutex
	sum  Summary
	err  error
	done chan struct{}
}

// New creates a harness reporting to rep, which may be nil.
func New(rep Reporter) *Harness {
	return &Harness{rep: rep, done: make(chan struct{})}
}

// Description sets and reports what the case checks.
func (h *Harness) Description(desc string) {
	h.repMu.Lock()
	defer h.repMu.Unlock()
	h.mu.Lock()
	h.sum.Description = desc
	h.mu.Unlock()
	if h.rep != nil {
		h.rep.Describe(desc)
	}
}

// Pass records a passed assertion.
func (h *Harness) Pass(msg string) { h.record(true, msg) }

// Fail records a failed assertion.
func (h *Harness) Fail(msg string) { h.record(false, msg) }

// Check records an assertion that passes if ok, returning ok.
func (h *Harness) Check(ok bool, msg string) bool {
	return h.record(ok, msg)
}

func (h *Harness) record(ok bool, msg string) bool {
	h.repMu.Lock()
	defer h.repMu.Unlock()
	h.mu.Lock()
	if h.sum.Finished {
		ok = false
		msg = "assertion after finish: " + msg
	}
	res := Result{Pass: ok, Message: msg}
	if ok {
		h.sum.Passed++
	} else {
		h.sum.Failed++
		h.err = multierr.Append(h.err, errors.New(msg))
	}
	h.mu.Unlock()
	if h.rep != nil {
		h.rep.Report(res)
	}
	return ok
}

// CheckPixels checks that every pixel of an RGBA buffer read back at the
// given size equals want within tolerance per channel, recording one
// assertion described by msg.
func (h *Harness) CheckPixels(buf []uint8, size image.Point, want color.RGBA, tolerance uint8, msg string) bool {
	if n := 4 * size.X * size.Y; len(buf) != n {
		return h.Check(false, fmt.Sprintf("%s: read %d bytes, expected %d", msg, len(buf), n))
	}
	exp := [4]uint8{want.R, want.G, want.B, want.A}
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			i := 4 * (y*size.X + x)
			px := buf[i : i+4]
			for c := 0; c < 4; c++ {
				if absDiff(px[c], exp[c]) > tolerance {
					return h.Check(false, fmt.Sprintf(
						"%s: at (%d, %d) expected: %d,%d,%d,%d was %d,%d,%d,%d",
						msg, x, y,
						exp[0], exp[1], exp[2], exp[3],
						px[0], px[1], px[2], px[3]))
				}
			}
		}
	}
	return h.Check(true, fmt.Sprintf("%s: should be %d,%d,%d,%d", msg, exp[0], exp[1], exp[2], exp[3]))
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Finish signals that the case is done, exactly once. Later calls return
// ErrFinished.
func (h *Harness) Finish() error {
	h.repMu.Lock()
	defer h.repMu.Unlock()
	h.mu.Lock()
	if h.sum.Finished {
		h.mu.Unlock()
		return ErrFinished
	}
	h.sum.Finished = true
	sum := h.sum
	close(h.done)
	h.mu.Unlock()
	if h.rep != nil {
		h.rep.Finished(sum)
	}
	return nil
}

// Done returns a channel closed once Finish is called.
func (h *Harness) Done() <-chan struct{} { return h.done }

// Err returns every failed assertion combined, or nil.
func (h *Harness) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// Summary returns the current totals.
func (h *Harness) Summary() Summary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sum
}
