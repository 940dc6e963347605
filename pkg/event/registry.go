package event

import (
	"context"
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/dmitrymomot/eventkit/pkg/logger"
)

// lastID is shared by every broadcaster so a Subscription is unique process-wide
// and a handle issued by one broadcaster never matches an entry of another.
var lastID atomic.Uint64

// Subscription identifies exactly one registration made with Connect.
// The zero value identifies nothing.
type Subscription struct {
	id uint64
}

// Valid reports whether s was issued by Connect.
func (s Subscription) Valid() bool {
	return s.id != 0
}

type entry[F any] struct {
	id   uint64
	code uintptr
	fn   F
}

// registry holds the ordered subscriber list shared by every broadcaster arity.
//
// The backing array of entries is never modified below len once published:
// appends write past the end and removals build a fresh slice. Fire can therefore
// iterate the slice header it read without copying it.
type registry[F any] struct {
	_       noCopy
	entries []entry[F]
	name    string
	log     *slog.Logger
}

// noCopy makes go vet's copylocks check report a broadcaster copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func (r *registry[F]) configure(opts []Option) {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}
	r.name = o.name
	r.log = o.logger
}

// add appends fn and returns its registration id, or 0 when fn is nil.
func (r *registry[F]) add(fn F) uint64 {
	code, ok := codeOf(fn)
	if !ok {
		return 0
	}
	id := lastID.Add(1)
	r.entries = append(r.entries, entry[F]{id: id, code: code, fn: fn})
	r.debug("subscriber added", logger.Subscription(id))
	return id
}

// removeFunc drops the first entry sharing fn's compiled function.
func (r *registry[F]) removeFunc(fn F) {
	code, ok := codeOf(fn)
	if !ok {
		return
	}
	for i := range r.entries {
		if r.entries[i].code == code {
			r.removeAt(i)
			return
		}
	}
}

func (r *registry[F]) removeAt(i int) {
	id := r.entries[i].id
	next := make([]entry[F], 0, len(r.entries)-1)
	next = append(next, r.entries[:i]...)
	next = append(next, r.entries[i+1:]...)
	r.entries = next
	r.debug("subscriber removed", logger.Subscription(id))
}

// Disconnect removes the registration identified by s.
// It reports whether the registration was still present; unknown, zero or
// already removed handles are ignored.
func (r *registry[F]) Disconnect(s Subscription) bool {
	if !s.Valid() {
		return false
	}
	for i := range r.entries {
		if r.entries[i].id == s.id {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// UnsubscribeAll removes every subscriber.
func (r *registry[F]) UnsubscribeAll() {
	if len(r.entries) == 0 {
		return
	}
	r.entries = nil
	r.debug("subscribers cleared")
}

// SubscriberCount returns the number of registrations, duplicates included.
func (r *registry[F]) SubscriberCount() int {
	return len(r.entries)
}

func (r *registry[F]) snapshot() []entry[F] {
	if r.log != nil && len(r.entries) > 0 {
		r.debug("firing")
	}
	return r.entries
}

func (r *registry[F]) debug(msg string, attrs ...slog.Attr) {
	if r.log == nil {
		return
	}
	attrs = append(attrs, logger.Event(r.name), logger.Subscribers(len(r.entries)))
	r.log.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// codeOf returns the code pointer behind a func value. Closures produced by the
// same compiled function share it regardless of what they capture. A literal
// inside an inlined function is compiled again at every call site, so those
// copies get different pointers.
func codeOf(fn any) (uintptr, bool) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
