// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"go.uber.org/zap"
)

// loggerKey stores the command logger in the context.
type loggerKey struct{}

// newLogger returns a development logger on stderr when verbose, a no-op
// logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	return zap.NewNop()
}
