// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import (
	"code.hybscloud.com/kont"
)

// Get is the effect operation reading the held value.
// Perform(Get{}) resumes with the current [Value].
type Get struct {
	kont.Phantom[Value]
}

// DispatchCell handles Get as a blocking read round-trip.
func (Get) DispatchCell(c *Cell) (kont.Resumed, error) {
	v, err := c.Read()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Put is the effect operation replacing the held value.
// Perform(Put{Value: v}) resumes with v.
type Put struct {
	kont.Phantom[Value]
	Value Value
}

// DispatchCell handles Put as a blocking replace round-trip.
func (p Put) DispatchCell(c *Cell) (kont.Resumed, error) {
	v, err := c.Replace(p.Value)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Incr is the effect operation adding one to the held number.
// Perform(Incr{}) resumes with the new numeric value.
type Incr struct {
	kont.Phantom[int64]
}

// DispatchCell handles Incr via the atomic read-modify-write protocol.
func (Incr) DispatchCell(c *Cell) (kont.Resumed, error) {
	n, err := c.Increment()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Decr is the effect operation subtracting one from the held number.
// Perform(Decr{}) resumes with the new numeric value.
type Decr struct {
	kont.Phantom[int64]
}

// DispatchCell handles Decr via the atomic read-modify-write protocol.
func (Decr) DispatchCell(c *Cell) (kont.Resumed, error) {
	n, err := c.Decrement()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// cellDispatcher is the structural interface for cell effect operations.
// DispatchCell is a complete blocking round-trip; a non-nil error is
// terminal for the protocol, never retryable.
type cellDispatcher interface {
	DispatchCell(c *Cell) (kont.Resumed, error)
}

// cellHandler implements kont.Handler for cell effects. A failing
// operation aborts the protocol with Left(err); the cell itself remains
// usable afterward.
type cellHandler[R any] struct {
	c *Cell
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h cellHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	cop, ok := op.(cellDispatcher)
	if !ok {
		panic("cell: unhandled effect in cellHandler")
	}
	v, err := cop.DispatchCell(h.c)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// Exec runs a Cont-world protocol against c, dispatching each operation
// as a blocking round-trip to the cell's owner. Returns Either[error, R]:
// Right on completion, Left on the first failing operation, which
// short-circuits the rest of the protocol.
func Exec[R any](c *Cell, protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	return kont.Handle(wrapped, cellHandler[R]{c: c})
}

// Run starts a fresh cell holding initial, executes the protocol against
// it, and cancels the owner before returning. Returns Left(ErrInvalidType)
// without spawning an owner if initial fails the shape gate.
func Run[R any](initial Value, protocol kont.Eff[R]) kont.Either[error, R] {
	c, err := Start(initial)
	if err != nil {
		return kont.Left[error, R](err)
	}
	defer c.Owner().Cancel()
	return Exec(c, protocol)
}
