package event

// Signal broadcasts to subscribers that take no arguments.
// The zero value is an empty broadcaster ready to use. A Signal must not be
// copied after first use.
type Signal struct {
	registry[func()]
}

// NewSignal creates an empty Signal.
func NewSignal(opts ...Option) *Signal {
	s := &Signal{}
	s.configure(opts)
	return s
}

// Subscribe appends fn to the subscriber list. The same function may be
// subscribed several times; each registration is invoked separately.
func (s *Signal) Subscribe(fn func()) *Signal {
	s.add(fn)
	return s
}

// Unsubscribe removes the first subscriber backed by the same compiled
// function as fn. Closures evaluated from one literal at one place in the
// compiled program match each other whatever they capture, and the earliest
// is removed. A literal returned by a helper that the compiler inlines is
// compiled separately at each call site, so closures from different call
// sites do not match; whether that happens depends on the build. Use Connect
// and Disconnect when the exact registration matters.
func (s *Signal) Unsubscribe(fn func()) *Signal {
	s.removeFunc(fn)
	return s
}

// Add is an alias for Subscribe.
func (s *Signal) Add(fn func()) *Signal { return s.Subscribe(fn) }

// Remove is an alias for Unsubscribe.
func (s *Signal) Remove(fn func()) *Signal { return s.Unsubscribe(fn) }

// Connect subscribes fn and returns a handle for Disconnect.
func (s *Signal) Connect(fn func()) Subscription {
	return Subscription{id: s.add(fn)}
}

// Fire invokes every subscriber in registration order. Subscribers added or
// removed while Fire runs take effect from the next call. A panicking
// subscriber stops delivery and the panic reaches the caller.
func (s *Signal) Fire() {
	for _, e := range s.snapshot() {
		e.fn()
	}
}

// Event broadcasts a single value of type T.
// The zero value is an empty broadcaster ready to use. An Event must not be
// copied after first use.
type Event[T any] struct {
	registry[func(T)]
}

// New creates an empty Event.
func New[T any](opts ...Option) *Event[T] {
	e := &Event[T]{}
	e.configure(opts)
	return e
}

// Subscribe appends fn to the subscriber list. Duplicates are kept.
func (e *Event[T]) Subscribe(fn func(T)) *Event[T] {
	e.add(fn)
	return e
}

// Unsubscribe removes the first subscriber backed by the same compiled
// function as fn. See Signal.Unsubscribe for the matching rules.
func (e *Event[T]) Unsubscribe(fn func(T)) *Event[T] {
	e.removeFunc(fn)
	return e
}

// Add is an alias for Subscribe.
func (e *Event[T]) Add(fn func(T)) *Event[T] { return e.Subscribe(fn) }

// Remove is an alias for Unsubscribe.
func (e *Event[T]) Remove(fn func(T)) *Event[T] { return e.Unsubscribe(fn) }

// Connect subscribes fn and returns a handle for Disconnect.
func (e *Event[T]) Connect(fn func(T)) Subscription {
	return Subscription{id: e.add(fn)}
}

// Fire invokes every subscriber with v in registration order.
func (e *Event[T]) Fire(v T) {
	for _, s := range e.snapshot() {
		s.fn(v)
	}
}

// Event2 broadcasts two values.
type Event2[T1, T2 any] struct {
	registry[func(T1, T2)]
}

// New2 creates an empty Event2.
func New2[T1, T2 any](opts ...Option) *Event2[T1, T2] {
	e := &Event2[T1, T2]{}
	e.configure(opts)
	return e
}

// Subscribe appends fn to the subscriber list. Duplicates are kept.
func (e *Event2[T1, T2]) Subscribe(fn func(T1, T2)) *Event2[T1, T2] {
	e.add(fn)
	return e
}

// Unsubscribe removes the first subscriber backed by the same compiled
// function as fn. See Signal.Unsubscribe for the matching rules.
func (e *Event2[T1, T2]) Unsubscribe(fn func(T1, T2)) *Event2[T1, T2] {
	e.removeFunc(fn)
	return e
}

// Add is an alias for Subscribe.
func (e *Event2[T1, T2]) Add(fn func(T1, T2)) *Event2[T1, T2] { return e.Subscribe(fn) }

// Remove is an alias for Unsubscribe.
func (e *Event2[T1, T2]) Remove(fn func(T1, T2)) *Event2[T1, T2] { return e.Unsubscribe(fn) }

// Connect subscribes fn and returns a handle for Disconnect.
func (e *Event2[T1, T2]) Connect(fn func(T1, T2)) Subscription {
	return Subscription{id: e.add(fn)}
}

// Fire invokes every subscriber with the values in registration order.
func (e *Event2[T1, T2]) Fire(v1 T1, v2 T2) {
	for _, s := range e.snapshot() {
		s.fn(v1, v2)
	}
}

// Event3 broadcasts three values. Wider argument lists are better grouped
// into a struct and sent through Event.
type Event3[T1, T2, T3 any] struct {
	registry[func(T1, T2, T3)]
}

// New3 creates an empty Event3.
func New3[T1, T2, T3 any](opts ...Option) *Event3[T1, T2, T3] {
	e := &Event3[T1, T2, T3]{}
	e.configure(opts)
	return e
}

// Subscribe appends fn to the subscriber list. Duplicates are kept.
func (e *Event3[T1, T2, T3]) Subscribe(fn func(T1, T2, T3)) *Event3[T1, T2, T3] {
	e.add(fn)
	return e
}

// Unsubscribe removes the first subscriber backed by the same compiled
// function as fn. See Signal.Unsubscribe for the matching rules.
func (e *Event3[T1, T2, T3]) Unsubscribe(fn func(T1, T2, T3)) *Event3[T1, T2, T3] {
	e.removeFunc(fn)
	return e
}

// Add is an alias for Subscribe.
func (e *Event3[T1, T2, T3]) Add(fn func(T1, T2, T3)) *Event3[T1, T2, T3] {
	return e.Subscribe(fn)
}

// Remove is an alias for Unsubscribe.
func (e *Event3[T1, T2, T3]) Remove(fn func(T1, T2, T3)) *Event3[T1, T2, T3] {
	return e.Unsubscribe(fn)
}

// Connect subscribes fn and returns a handle for Disconnect.
func (e *Event3[T1, T2, T3]) Connect(fn func(T1, T2, T3)) Subscription {
	return Subscription{id: e.add(fn)}
}

// Fire invokes every subscriber with the values in registration order.
func (e *Event3[T1, T2, T3]) Fire(v1 T1, v2 T2, v3 T3) {
	for _, s := range e.snapshot() {
		s.fn(v1, v2, v3)
	}
}
