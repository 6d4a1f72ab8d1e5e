// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cell provides a single mutable scalar value serialized through one
// owner goroutine, so no caller ever observes a torn or interleaved update.
//
// A [Cell] holds exactly one [Value] (Empty, Tag, Text, or Number) and
// exposes read, replace, equality, emptiness, reset, and atomic
// increment/decrement operations over it.
//
// # Architecture
//
//   - Ownership: each Cell is backed by one [Owner] loop that exclusively
//     holds the state and applies [Transform] functions strictly in mailbox
//     arrival order. Callers never touch the state directly.
//   - Replies: request/reply round-trips travel over bounded lock-free SPSC
//     queues via [code.hybscloud.com/lfq], awaited with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]); the reply payload is a
//     [code.hybscloud.com/kont.Either] of error and value.
//   - Shape gate: Value is a closed sum type. Composite shapes are
//     unrepresentable; the runtime gate catches uninitialized Values and
//     state written through the owner handle directly.
//   - Atomicity: Increment and Decrement are one read-transform request
//     each, so they cannot interleave with a concurrent Replace.
//
// # API Topologies
//
//   - Direct: [Start], [Cell.Read], [Cell.Replace], [Cell.Equals],
//     [Cell.IsEmpty], [Cell.Reset], [Cell.Increment], [Cell.Decrement].
//   - Cont-world: effect operations [Get], [Put], [Incr], [Decr] with fused
//     combinators [ReadBind], [ReplaceThen], [IncrementBind],
//     [DecrementBind], evaluated by [Exec] or [Run].
//   - Owner: [SpawnOwner], [Owner.Request], [Owner.Post] for arbitrary
//     state behind the same serialization discipline.
//
// # Errors
//
// [ErrInvalidType] and [ErrNotANumber] are the two shape error kinds; both
// surface synchronously to the calling operation and never terminate the
// owner. [ErrOwnerClosed] reports an operation racing owner shutdown.
//
// # Example
//
//	c, _ := cell.Start(cell.NewNumber(0))
//	n, _ := c.Increment() // 1
//	c.Replace(cell.NewTag("completed"))
//	_, err := c.Increment() // cell.ErrNotANumber, state untouched
//	_ = n
//	_ = err
package cell
