// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cell

import (
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// mailboxCapacity bounds buffered envelopes per owner. 16 absorbs bursts
// from concurrent callers without letting a slow transform accumulate an
// unbounded backlog; senders block once the mailbox is full.
const mailboxCapacity = 16

// replyCapacity is the bounded capacity of the per-request reply queue.
// 4 keeps the ring buffer within a single cache line; exactly one slot is
// ever used, so enqueueing the reply cannot block.
const replyCapacity = 4

// Transform maps the owner's current state to a replacement state and a
// reply delivered back to the requester. It runs on the owner goroutine
// with exclusive access to the state.
type Transform func(state any) (next any, reply any)

// Mutation maps the owner's current state to a replacement state with no
// reply. It runs on the owner goroutine with exclusive access to the state.
type Mutation func(state any) any

// envelope is a mailbox item. reply is nil for fire-and-forget postings.
type envelope struct {
	transform Transform
	reply     *lfq.SPSC[any]
}

// Owner is a single-goroutine loop that exclusively holds one state value
// and applies transforms to it strictly in mailbox arrival order, never
// concurrently with itself. All mutation of the state funnels through the
// mailbox; callers hold only the *Owner handle.
type Owner struct {
	queue      chan envelope
	stop       chan struct{}
	done       chan struct{}
	serial     Serial
	cancelOnce sync.Once
}

// SpawnOwner starts an owner goroutine holding initial and returns its
// handle. The mailbox is operational when SpawnOwner returns.
func SpawnOwner(initial any) *Owner {
	o := &Owner{
		queue:  make(chan envelope, mailboxCapacity),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		serial: nextSerial(),
	}
	go o.live(initial)
	logger.Debug("owner spawned", "serial", o.serial)
	return o
}

// live is the owner loop. On cancellation it serves every envelope already
// accepted into the mailbox, then closes done.
func (o *Owner) live(state any) {
	for {
		select {
		case <-o.stop:
			o.drain(state)
			close(o.done)
			logger.Debug("owner destroyed", "serial", o.serial)
			return
		case e := <-o.queue:
			state = o.handle(state, e)
		}
	}
}

// handle applies one envelope to the state. Exactly one reply is enqueued
// per request envelope and replyCapacity > 1, so Enqueue cannot fail.
func (o *Owner) handle(state any, e envelope) any {
	next, reply := e.transform(state)
	if e.reply != nil {
		slot := reply
		_ = e.reply.Enqueue(&slot)
	}
	return next
}

// drain serves envelopes accepted before cancellation won the loop select.
// Envelopes enqueued after the drain pass observes an empty mailbox are
// dropped; their requesters observe the done signal instead of a reply.
func (o *Owner) drain(state any) {
	for {
		select {
		case e := <-o.queue:
			state = o.handle(state, e)
		default:
			return
		}
	}
}

// Request sends a read-transform to the owner and blocks until the owner
// has fully applied it and replied. Reports false when the owner has shut
// down before producing a reply; the transform did not run in that case
// unless the shutdown drain served it.
//
// The transform runs on the owner goroutine and must not call back into
// the same owner.
func (o *Owner) Request(t Transform) (any, bool) {
	q := new(lfq.SPSC[any])
	q.Init(replyCapacity)
	select {
	case o.queue <- envelope{transform: t, reply: q}:
	case <-o.done:
		return nil, false
	}
	return o.await(q)
}

// await spins on the bounded reply queue with adaptive backoff, in place
// of a per-request channel. Producer is the owner goroutine, consumer is
// the requester: single-producer single-consumer by construction.
func (o *Owner) await(q *lfq.SPSC[any]) (any, bool) {
	var bo iox.Backoff
	for {
		v, err := q.Dequeue()
		if err == nil {
			return v, true
		}
		select {
		case <-o.done:
			// The shutdown drain may have replied between the failed
			// dequeue and the done signal; poll once more.
			if v, err := q.Dequeue(); err == nil {
				return v, true
			}
			return nil, false
		default:
		}
		bo.Wait()
	}
}

// Post enqueues a fire-and-forget write-transform. Reports false when the
// owner has already shut down.
func (o *Owner) Post(m Mutation) bool {
	t := func(state any) (any, any) {
		return m(state), nil
	}
	// The buffered mailbox still accepts sends after the owner exits,
	// and select picks among ready cases at random; checking done first
	// keeps the post-shutdown answer deterministic.
	select {
	case <-o.done:
		return false
	default:
	}
	select {
	case o.queue <- envelope{transform: t}:
		return true
	case <-o.done:
		return false
	}
}

// Cancel requests owner shutdown. Idempotent. Envelopes already accepted
// are still served before Done is closed.
func (o *Owner) Cancel() {
	o.cancelOnce.Do(func() {
		logger.Debug("owner canceling", "serial", o.serial)
		close(o.stop)
	})
}

// Done returns a channel closed once the owner goroutine has exited and
// the mailbox has been drained.
func (o *Owner) Done() <-chan struct{} {
	return o.done
}

// Serial returns the serial number assigned to this owner.
func (o *Owner) Serial() Serial {
	return o.serial
}
