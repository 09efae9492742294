package recognizer

// Option configures a Recognizer at construction time.
type Option func(*config)

type config struct {
	logger  *Logger
	builder ConsistencyGraphSource
}

// WithLogger overrides the default no-op logger. Passing a nil logger
// panics: a caller who bothers to call WithLogger has almost certainly
// passed nil by mistake, and silently falling back to NoopLogger would hide
// that.
func WithLogger(logger *Logger) Option {
	if logger == nil {
		panic("recognizer: WithLogger requires a non-nil Logger")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// WithGraphBuilder overrides the default incremental graphbuilder.Builder
// with a caller-supplied ConsistencyGraphSource. Passing nil panics for the
// same reason WithLogger does.
func WithGraphBuilder(builder ConsistencyGraphSource) Option {
	if builder == nil {
		panic("recognizer: WithGraphBuilder requires a non-nil ConsistencyGraphSource")
	}
	return func(c *config) {
		c.builder = builder
	}
}
