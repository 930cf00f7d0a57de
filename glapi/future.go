package glapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTimeout is returned by Future.Await when its context deadline passes
// before the future settles.
var ErrTimeout = errors.New("timed out waiting for resource")

// Future is a single-shot result of an asynchronous image load. The first
// call to Resolve or Reject settles it; later calls are ignored.
type Future struct {
	once sync.Once
	done chan struct{}
	img  Image
	err  error
}

// NewFuture returns an unsettled Future.
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve settles the future with img, returning false if it was already
// settled.
func (fut *Future) Resolve(img Image) bool {
	return fut.settle(img, nil)
}

// Reject settles the future with err, returning false if it was already
// settled.
func (fut *Future) Reject(err error) bool {
	if err == nil {
		err = errors.New("image load rejected")
	}
	return fut.settle(nil, err)
}

func (fut *Future) settle(img Image, err error) (settled bool) {
	fut.once.Do(func() {
		fut.img, fut.err = img, err
		close(fut.done)
		settled = true
	})
	return settled
}

// Done returns a channel closed once the future settles.
func (fut *Future) Done() <-chan struct{} { return fut.done }

// Await blocks until the future settles or ctx is done.
//
// A settled future always wins over a done context. An expired deadline is
// reported as ErrTimeout.
func (fut *Future) Await(ctx context.Context) (Image, error) {
	select {
	case <-fut.done:
		return fut.img, fut.err
	default:
	}
	select {
	case <-fut.done:
		return fut.img, fut.err
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}
}
