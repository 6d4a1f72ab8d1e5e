// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import (
	"code.hybscloud.com/kont"
)

// Cell is a handle to one owner loop holding exactly one scalar [Value].
// All operations are synchronous round-trips through the owner's mailbox,
// so for a single Cell every operation from every caller falls into one
// total order, each fully applied before the next begins.
type Cell struct {
	owner *Owner
}

// Start spawns an owner loop holding initial and returns the cell handle.
// Fails with [ErrInvalidType] if initial is not a legal scalar shape; no
// owner is spawned on that path.
func Start(initial Value) (*Cell, error) {
	if !initial.Valid() {
		return nil, ErrInvalidType
	}
	return &Cell{owner: SpawnOwner(initial)}, nil
}

// StartEmpty spawns a cell holding Empty. Cannot fail: Empty always
// satisfies the shape gate.
func StartEmpty() *Cell {
	c, _ := Start(Empty())
	return c
}

// Owner returns the underlying owner loop handle. Writing state through
// the owner directly bypasses the shape gate; a later Read reports
// [ErrInvalidType] if a foreign value is found.
func (c *Cell) Owner() *Owner {
	return c.owner
}

// Serial returns the serial number of the underlying owner.
func (c *Cell) Serial() Serial {
	return c.owner.Serial()
}

// Read returns the held value. The transform is the identity on the state;
// the shape gate still runs against the held state on every read. In a
// program that mutates only through this type the gate cannot fire, but a
// write made through the owner handle surfaces here as [ErrInvalidType].
func (c *Cell) Read() (Value, error) {
	return c.exchange(func(state any) (any, any) {
		v, err := heldValue(state)
		if err != nil {
			return state, kont.Left[error, Value](err)
		}
		return state, kont.Right[error](v)
	})
}

// Replace atomically sets the held value to v, discarding the previous
// value, and returns v. Fails with [ErrInvalidType] before any request is
// issued if v is not a legal scalar shape; the held value is unchanged on
// that path.
func (c *Cell) Replace(v Value) (Value, error) {
	if !v.Valid() {
		return Value{}, ErrInvalidType
	}
	return c.exchange(func(any) (any, any) {
		return v, kont.Right[error](v)
	})
}

// Reset replaces the held value with Empty, discarding the previous value.
func (c *Cell) Reset() error {
	_, err := c.Replace(Empty())
	return err
}

// Equals reads the held value and compares it against v. The read and the
// comparison are two steps: a concurrent writer may replace the value
// between them, so the result is a snapshot, not a held invariant.
func (c *Cell) Equals(v Value) (bool, error) {
	held, err := c.Read()
	if err != nil {
		return false, err
	}
	return held == v, nil
}

// IsEmpty reports whether the held value is Empty.
func (c *Cell) IsEmpty() (bool, error) {
	return c.Equals(Empty())
}

// Increment adds one to the held number and returns the new value.
// Fails with [ErrNotANumber], leaving the state untouched, if the held
// value is a non-Number scalar at transform time. State that fails the
// shape gate entirely (written through the owner handle) reports
// [ErrInvalidType] instead, as on [Cell.Read].
func (c *Cell) Increment() (int64, error) {
	return c.add(+1)
}

// Decrement subtracts one from the held number and returns the new value.
// Fails with [ErrNotANumber], leaving the state untouched, if the held
// value is a non-Number scalar at transform time. State that fails the
// shape gate entirely (written through the owner handle) reports
// [ErrInvalidType] instead, as on [Cell.Read].
func (c *Cell) Decrement() (int64, error) {
	return c.add(-1)
}

// add is the atomic read-modify-write protocol: exactly one request whose
// transform inspects and replaces the state on the owner goroutine, so no
// Replace or sibling add can interleave between the read and the write.
// Arithmetic wraps on int64 overflow.
func (c *Cell) add(delta int64) (int64, error) {
	v, err := c.exchange(func(state any) (any, any) {
		held, err := heldValue(state)
		if err != nil {
			return state, kont.Left[error, Value](err)
		}
		if held.Kind() != KindNumber {
			return state, kont.Left[error, Value](ErrNotANumber)
		}
		next := NewNumber(held.Int() + delta)
		return next, kont.Right[error](next)
	})
	if err != nil {
		return 0, err
	}
	return v.Int(), nil
}

// exchange issues one request and unwraps the Either reply: Left carries
// the operation error, Right the resulting value.
func (c *Cell) exchange(t Transform) (Value, error) {
	reply, ok := c.owner.Request(t)
	if !ok {
		return Value{}, ErrOwnerClosed
	}
	e := reply.(kont.Either[error, Value])
	if err, isLeft := e.GetLeft(); isLeft {
		return Value{}, err
	}
	v, _ := e.GetRight()
	return v, nil
}

// heldValue applies the shape gate to owner-held state.
func heldValue(state any) (Value, error) {
	v, ok := state.(Value)
	if !ok || !v.Valid() {
		return Value{}, ErrInvalidType
	}
	return v, nil
}
