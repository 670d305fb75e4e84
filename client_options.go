package mqttsn

import "time"

// clientOptions holds configuration for a Client.
type clientOptions struct {
	// Session settings
	keepAlive    time.Duration
	cleanSession bool

	// Acknowledgment settings. maxRetries counts send attempts: a request
	// is sent up to maxRetries times, each waiting retryTimeout for the
	// matching reply, before failing with ErrTimeout.
	retryTimeout time.Duration
	maxRetries   int

	// Will message
	willTopic   string
	willPayload []byte
	willQoS     byte
	willRetain  bool

	// Predefined topic bindings, agreed with the gateway out of band.
	predefined map[uint16]string

	// Outbound publish pacing. Zero rate disables pacing.
	publishRate  float64
	publishBurst int

	// Observability
	logger  Logger
	onEvent EventHandler
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() *clientOptions {
	return &clientOptions{
		keepAlive:    60 * time.Second,
		cleanSession: true,
		retryTimeout: 5 * time.Second,
		maxRetries:   3,
		predefined:   make(map[uint16]string),
		logger:       NewNoOpLogger(),
	}
}

// Option configures a Client.
type Option func(*clientOptions)

// applyOptions builds the effective configuration.
func applyOptions(opts ...Option) *clientOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithKeepAlive sets the keep-alive interval. The wire carries whole
// seconds; sub-second durations are rounded up. Zero disables keep-alive.
func WithKeepAlive(interval time.Duration) Option {
	return func(o *clientOptions) {
		o.keepAlive = interval
	}
}

// WithCleanSession sets the CleanSession flag for CONNECT.
// Defaults to true.
func WithCleanSession(clean bool) Option {
	return func(o *clientOptions) {
		o.cleanSession = clean
	}
}

// WithRetryTimeout sets how long each send attempt waits for the matching
// acknowledgment. Defaults to 5 seconds.
func WithRetryTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.retryTimeout = timeout
		}
	}
}

// WithMaxRetries sets the number of send attempts before a request fails
// with ErrTimeout. Defaults to 3.
func WithMaxRetries(attempts int) Option {
	return func(o *clientOptions) {
		if attempts > 0 {
			o.maxRetries = attempts
		}
	}
}

// WithWill configures the will message the gateway publishes if the
// session dies without a DISCONNECT.
func WithWill(topic string, payload []byte, qos byte, retain bool) Option {
	return func(o *clientOptions) {
		o.willTopic = topic
		o.willPayload = payload
		o.willQoS = qos
		o.willRetain = retain
	}
}

// WithPredefinedTopic binds a topic id agreed with the gateway out of
// band. Predefined ids bypass the REGISTER exchange.
func WithPredefinedTopic(id uint16, name string) Option {
	return func(o *clientOptions) {
		o.predefined[id] = name
	}
}

// WithPublishRate paces outgoing publishes to the given sustained rate and
// burst. Disabled by default.
func WithPublishRate(perSecond float64, burst int) Option {
	return func(o *clientOptions) {
		o.publishRate = perSecond
		o.publishBurst = burst
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventHandler sets the handler for lifecycle events (connected,
// disconnected, connection lost). Events are delivered from the client's
// receive loop; handlers must not block.
func WithEventHandler(handler EventHandler) Option {
	return func(o *clientOptions) {
		o.onEvent = handler
	}
}
