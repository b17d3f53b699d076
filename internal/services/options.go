package services

import (
	"time"

	"github.com/dmitrijs2005/back2me/internal/logging"
)

// Option customizes a service.
type Option func(*base)

// WithClock replaces time.Now. Tests use it to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithLogger sets the logger; services log nothing by default.
func WithLogger(l logging.Logger) Option {
	return func(b *base) { b.log = l }
}

type base struct {
	now func() time.Time
	log logging.Logger
}

func newBase(opts []Option) base {
	b := base{now: time.Now, log: logging.Nop()}
	for _, o := range opts {
		o(&b)
	}
	return b
}
