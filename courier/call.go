package courier

import (
	"context"
)

// Outcome is the exhaustive result of one call: a decoded value or
// one taxonomy error, never both.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Call is a one-shot handle on an in-flight request started with
// Perform. Exactly one outcome is delivered, then the channel closes.
// If the call's context is cancelled before completion, nothing is
// delivered and the channel closes empty.
type Call[R any] struct {
	out chan Outcome[R]
}

// Perform executes the contract asynchronously. It returns
// immediately; completion is delivered through the returned Call.
//
//	call := courier.Perform(ctx, exec, courier.NewRequest[User](url))
//	// ... other work ...
//	user, err := call.Wait(ctx)
//
// Concurrent calls are independent and may complete in any order.
func Perform[R any](ctx context.Context, x *Executor, ep Endpoint[R]) *Call[R] {
	c := &Call[R]{out: make(chan Outcome[R], 1)}
	go func() {
		defer close(c.out)
		value, err := Do[R](ctx, x, ep)
		if ctx.Err() != nil {
			// Cancelled: suppress delivery entirely.
			return
		}
		c.out <- Outcome[R]{Value: value, Err: err}
	}()
	return c
}

// Outcome exposes the completion channel for select-based callers.
// The channel yields at most one value and then closes.
func (c *Call[R]) Outcome() <-chan Outcome[R] {
	return c.out
}

// Wait blocks until the call completes or ctx is done. A call whose
// own context was cancelled yields the context's error.
func (c *Call[R]) Wait(ctx context.Context) (R, error) {
	select {
	case o, ok := <-c.out:
		if !ok {
			var zero R
			if err := ctx.Err(); err != nil {
				return zero, err
			}
			return zero, context.Canceled
		}
		return o.Value, o.Err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
