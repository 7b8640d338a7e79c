package block

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockview/pkg/render/block/connector"
	"github.com/matzehuels/blockview/pkg/render/block/styles"
)

// Option configures every view of a tree built by [NewTree].
type Option func(*config)

type config struct {
	metrics connector.Metrics
	tracker Tracker
	logger  *log.Logger
	style   styles.Style
}

// WithMetrics overrides the default connector and layout metrics.
func WithMetrics(m connector.Metrics) Option { return func(c *config) { c.metrics = m } }

// WithTracker publishes connector anchors to t. Without a tracker, views are
// display-only: anchors are still computed but never published.
func WithTracker(t Tracker) Option { return func(c *config) { c.tracker = t } }

// WithLogger sets the logger for per-pass debug output.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// WithStyle sets the outline, highlight and overlay paints.
func WithStyle(s styles.Style) Option { return func(c *config) { c.style = s } }

func newConfig(opts ...Option) *config {
	c := &config{
		metrics: connector.DefaultMetrics(),
		style:   styles.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}
