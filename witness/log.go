package witness

import (
	"context"

	"github.com/amp-labs/amp-witness/logger"
)

// Log writes d's description of value as an info message on the logger for
// ctx, with tag attached as an attribute.
func Log[A any](ctx context.Context, tag string, value A, d Describing[A]) {
	logger.Get(ctx).InfoContext(ctx, d.Describe(value), "tag", tag)
}
