package smpsched

import (
	"errors"

	"github.com/joeycumines/logiface"
)

// schedulerOptions holds configuration options for Scheduler creation.
type schedulerOptions struct {
	lockFactory    LockFactory
	logger         *logiface.Logger[logiface.Event]
	metricsEnabled bool
}

// Option configures a [Scheduler] instance.
type Option interface {
	applyScheduler(*schedulerOptions) error
}

// optionImpl implements Option.
type optionImpl struct {
	applySchedulerFunc func(*schedulerOptions) error
}

func (x *optionImpl) applyScheduler(opts *schedulerOptions) error {
	return x.applySchedulerFunc(opts)
}

// WithLockFactory sets the lock policy guarding each hart's run queue.
// See [LockFactory] for the contract. The default is a *sync.Mutex per
// queue.
func WithLockFactory(factory LockFactory) Option {
	return &optionImpl{func(opts *schedulerOptions) error {
		if factory == nil {
			return errors.New(`smpsched: nil lock factory`)
		}
		opts.lockFactory = factory
		return nil
	}}
}

// WithLogger sets the structured logger used for scheduler events. Events
// are level-guarded by logiface, so a logger configured above trace level
// costs nothing on the steal path. A nil logger (the default) disables
// logging entirely.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return &optionImpl{func(opts *schedulerOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithMetrics enables runtime counters, accessible via
// [Scheduler.Metrics]. The overhead is one atomic add per operation. When
// disabled (the default), [Scheduler.Metrics] returns the zero value.
func WithMetrics(enabled bool) Option {
	return &optionImpl{func(opts *schedulerOptions) error {
		opts.metricsEnabled = enabled
		return nil
	}}
}

// resolveOptions applies Option instances to schedulerOptions.
func resolveOptions(opts []Option) (*schedulerOptions, error) {
	cfg := new(schedulerOptions)
	for _, opt := range opts {
		if opt == nil {
			continue // Skip nil options gracefully
		}
		if err := opt.applyScheduler(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
