package orchestrator

// Notifier receives operator notices
type Notifier func(message string)

// Option configures an Orchestrator
type Option func(o *Orchestrator)

// WithLastResult sets the last-result binding name, empty disables write-back
func WithLastResult(name string) Option {
	return func(o *Orchestrator) {
		o.lastResult = name
	}
}

// WithNotifier sets the notice receiver
func WithNotifier(notifier Notifier) Option {
	return func(o *Orchestrator) {
		o.notifier = notifier
	}
}
