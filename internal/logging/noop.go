package logging

import (
	"context"

	"github.com/goliatone/go-richtext/pkg/interfaces"
)

type noopLogger struct{}

// NoOp returns a logger that discards every entry. It is the fallback when no
// provider is configured so call sites never guard against nil loggers.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (l noopLogger) WithContext(context.Context) interfaces.Logger { return l }
