package npmkit

// Observer receives cache lifecycle events. Implementations must be safe
// for concurrent use when the memoized function is called from multiple
// goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a cache event type.
type Event int

const (
	// EventHit is emitted when a call finds an already-settled value.
	EventHit Event = iota
	// EventMiss is emitted when a call invokes the wrapped function.
	EventMiss
	// EventDedup is emitted when a caller joins an in-flight call for the
	// same key instead of triggering a new one.
	EventDedup
	// EventEvict is emitted when a failed call's entry is removed, making
	// the key eligible for a fresh attempt.
	EventEvict
)

// String returns the event name as it appears in logs.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventDedup:
		return "dedup"
	case EventEvict:
		return "evict"
	default:
		return "unknown"
	}
}

// EventData carries the details of a cache event. Key is the rendered form
// of the cache key.
type EventData struct {
	Event Event
	Key   string
}
