package npmkit

type config struct {
	observer Observer
}

// Option configures a wrapper created by Memoize or Memoize2.
type Option func(*config)

// WithObserver attaches an Observer that receives hit, miss, dedup, and
// evict events for the lifetime of the wrapper.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}
