package segtree

import "github.com/sirupsen/logrus"

type options struct {
	logger logrus.FieldLogger
	name   string
}

// Option configures a tree at construction time.
type Option func(*options)

// WithLogger sets the logger used for construction, snapshot and rejected
// call diagnostics. Everything is logged at debug level. The default is
// logrus.StandardLogger().
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName tags every log line of the tree with a "tree" field.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// entry returns the logger carrying the tree's identifying fields.
func (o options) entry(n, sz int) logrus.FieldLogger {
	log := o.logger.WithFields(logrus.Fields{"len": n, "size": sz})
	if o.name != "" {
		log = log.WithField("tree", o.name)
	}
	return log
}
