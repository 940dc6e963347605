// Package event provides synchronous, type-safe broadcasters in the
// observer / signal-slot style.
//
// A broadcaster keeps an ordered list of subscriber functions and, when fired,
// calls every one of them on the caller's goroutine in the order they were
// registered. Go has no variadic type parameters, so the argument list is chosen
// by type:
//
//   - Signal             – func()
//   - Event[T]           – func(T)
//   - Event2[T1, T2]     – func(T1, T2)
//   - Event3[T1, T2, T3] – func(T1, T2, T3)
//
// Wider argument lists are best grouped into a struct and sent through Event.
//
// # Usage
//
//	import "github.com/dmitrymomot/eventkit/pkg/event"
//
//	var sum, product int
//	onPair := event.New2[int, int]()
//	onPair.
//		Subscribe(func(a, b int) { sum = a + b }).
//		Subscribe(func(a, b int) { product = a * b })
//
//	onPair.Fire(10, 20) // sum == 30, product == 200
//
// Add and Remove are aliases for Subscribe and Unsubscribe. All four return the
// receiver so calls can be chained.
//
// # Removing subscribers
//
// Go function values are not comparable, so Unsubscribe matches by the
// compiled function behind the value. Closures evaluated from one literal at
// one place in the compiled program are the same subscriber, whatever they
// captured. When several such closures are registered, Unsubscribe removes the
// earliest one, which may not be the one you passed.
//
// The compiler copies a literal into every call site of a helper it inlines:
//
//	func counter(n *int) func() { return func() { *n++ } }
//
//	s.Subscribe(counter(&a))
//	s.Unsubscribe(counter(&b)) // removes nothing when counter is inlined
//
// Such closures match only when the helper is not inlined, so the outcome
// depends on the build. Passing the very value that was subscribed always
// matches, and closures returned by a helper marked //go:noinline always match
// each other.
//
// For exact removal use Connect, which returns a Subscription handle, and
// Disconnect:
//
//	sub := onPair.Connect(func(a, b int) { log.Println(a, b) })
//	defer onPair.Disconnect(sub)
//
// # Delivery
//
// Fire works on the subscriber list as it was when Fire was called. Subscribers
// that subscribe or unsubscribe during delivery affect only later calls.
//
// A subscriber that panics stops delivery: the remaining subscribers are not
// called and the panic propagates to the caller of Fire unchanged.
//
// # Concurrency
//
// Broadcasters are not safe for concurrent use. Callers sharing one across
// goroutines must synchronise access themselves.
//
// # Logging
//
// Constructors accept WithLogger and WithName. When a logger is set, changes to
// the subscriber list and each Fire are recorded at debug level. The zero value
// logs nothing.
package event
