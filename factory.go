package stockpile

import "go.uber.org/zap"

// Option configures an ECS instance at construction time.
type Option func(*ECS)

// WithLogger attaches a logger for debug-level instrumentation (component
// registration, system lifecycle, deferred-operation flushes). The default is
// a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(ecs *ECS) {
		ecs.log = log
	}
}

// New creates an empty ECS instance.
func New(opts ...Option) *ECS {
	ecs := &ECS{
		log:   zap.NewNop(),
		queue: newOpQueue(),
	}
	ecs.queries = engine{pools: &ecs.pools}
	for _, opt := range opts {
		opt(ecs)
	}
	return ecs
}
