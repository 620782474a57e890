package kernel

import (
	"sync/atomic"

	"joyled/hal"
)

// Event records an accepted button edge for the loop to log.
type Event struct {
	Source hal.ButtonID
	At     uint64
}

const mailboxSlots = 8

type slot struct {
	ready atomic.Bool
	ev    Event
}

// Mailbox is a fixed-size multi-producer, single-consumer queue.
// It never blocks or allocates, so interrupt handlers may post to it.
type Mailbox struct {
	_       [0]func() // prevent accidental copying.
	head    atomic.Uint32
	tail    atomic.Uint32
	dropped atomic.Uint32
	slots   [mailboxSlots]slot
}

// TrySend attempts to enqueue an event, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(ev Event) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		mb.dropped.Add(1)
		return false
	}

	// Reserve a slot.
	if !mb.head.CompareAndSwap(head, head+1) {
		mb.dropped.Add(1)
		return false
	}

	s := &mb.slots[head%mailboxSlots]
	s.ev = ev
	s.ready.Store(true)
	return true
}

// TryRecv attempts to dequeue one event, returning false if empty.
func (mb *Mailbox) TryRecv() (Event, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return Event{}, false
	}

	// A producer may have reserved the slot but not filled it yet.
	s := &mb.slots[tail%mailboxSlots]
	if !s.ready.Load() {
		return Event{}, false
	}
	ev := s.ev
	s.ready.Store(false)
	mb.tail.Store(tail + 1)
	return ev, true
}

// Dropped returns and resets the count of events lost to a full mailbox.
func (mb *Mailbox) Dropped() uint32 {
	return mb.dropped.Swap(0)
}
