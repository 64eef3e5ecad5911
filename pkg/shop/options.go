package shop

import (
	"io"
	"log/slog"
	"os"

	"github.com/shopflow/shopflow/internal/logging"
)

var defaultOutput io.Writer = os.Stdout

func defaultLogger() *slog.Logger {
	return logging.NewNop()
}

// Option configures the flow at entry. Options apply to VisitSite only and
// are carried across every subsequent transition.
type Option func(*customer)

// WithOutput redirects the human-readable status lines. Pass io.Discard to
// silence them.
func WithOutput(w io.Writer) Option {
	return func(c *customer) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger attaches a structured logger; transitions are logged at debug
// level. The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *customer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHooks registers observability hooks. Repeating the option fans events
// out to every registered set.
func WithHooks(hooks FlowHooks) Option {
	return func(c *customer) {
		c.hooks = append(c.hooks, hooks)
	}
}
