package log

import (
	"go.uber.org/zap"
)

// NewLogger returns a development-config logger when verbose diagnostics
// are requested, otherwise a nop logger so the command output stays clean.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewNop(), nil
}
