package enumset

type options struct {
	active    []string
	value     *int64
	initial   string
	hasInit   bool
	onChange  ChangeHook
	listeners []ChangeHook
	locked    bool
	logger    *Logger
}

// Option configures Set, BigSet, MapSet and Enum construction.
//
// Options exist to avoid exploding the API surface with constructor
// variants; each constructor documents which options it honors.
type Option func(*options)

func applyOptions(optFns []Option) *options {
	o := &options{}
	for _, fn := range optFns {
		fn(o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// WithActive sets the initial activation of a set. Names may be given as
// multiple arguments, a spread slice, or one comma-delimited string; all
// three forms normalize identically.
func WithActive(names ...string) Option {
	return func(o *options) {
		o.active = append(o.active, names...)
	}
}

// WithValue sets the initial raw bit value of a Set, bypassing name
// resolution. Ignored by BigSet.
func WithValue(v int64) Option {
	return func(o *options) {
		o.value = &v
	}
}

// WithInitial sets the initial value of an Enum. The value must be one of
// the declared allowed values; construction fails otherwise. The initial
// assignment is not a transition: no change log entry, no hook invocation.
func WithInitial(v string) Option {
	return func(o *options) {
		o.initial = v
		o.hasInit = true
	}
}

// WithOnChange sets the enum's own change hook, invoked before any
// registered listeners on every transition.
func WithOnChange(h ChangeHook) Option {
	return func(o *options) {
		o.onChange = h
	}
}

// WithListener registers a change listener. Listeners run in registration
// order after the WithOnChange hook.
func WithListener(h ChangeHook) Option {
	return func(o *options) {
		o.listeners = append(o.listeners, h)
	}
}

// WithLock constructs the enum already locked. A locked enum rejects every
// transition, freezing it at its initial (possibly unset) value.
func WithLock() Option {
	return func(o *options) {
		o.locked = true
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, a no-op logger is used.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
