// file: strie/recover/recover.go
package recover

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rskv-p/strie/pkg/x_log"
)

const (
	tagService  = "service"
	tagFunction = "function"
	tagContext  = "context"
	tagLabel    = "label"
)

// ----------------------------------------------------
// Global panic hook (optional)
// ----------------------------------------------------

var OnPanic func(service, function string, recovered any)

var custom *zerolog.Logger

// SetLogger allows injecting a custom logger instance (e.g. for testing).
func SetLogger(l zerolog.Logger) {
	custom = &l
}

func logger() *zerolog.Logger {
	if custom != nil {
		return custom
	}
	l := x_log.New("recover")
	return &l
}

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// RecoverWithContext captures and logs a panic with metadata and optional data.
// It must be deferred directly.
func RecoverWithContext(service, function string, data any) {
	if r := recover(); r != nil {
		report(service, function, r, data)
	}
}

func report(service, function string, recovered, data any) {
	ev := logger().Error().
		Str(tagService, service).
		Str(tagFunction, function).
		Str("stack", string(debug.Stack()))
	if data != nil {
		ev = ev.Str(tagContext, fmt.Sprintf("%+v", data))
	}
	ev.Msgf("panic: %v", recovered)

	if OnPanic != nil {
		OnPanic(service, function, recovered)
	}
}

// Safe runs the given function safely, recovering and logging any panic with label.
func Safe(label string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger().Error().Str(tagLabel, label).Str("stack", string(debug.Stack())).Msgf("panic: %v", r)
			if OnPanic != nil {
				OnPanic("Safe", label, r)
			}
		}
	}()
	fn()
}

// RecoverFunc runs fn and turns a panic into an error.
func RecoverFunc(label string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			report("RecoverFunc", label, r, nil)
			err = fmt.Errorf("%s: panic: %v", label, r)
		}
	}()
	return fn()
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover wraps a context-aware function with panic protection.
func WrapRecover(service, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				report(service, function, r, nil)
				err = fmt.Errorf("panic recovered in %s.%s: %v", service, function, r)
			}
		}()
		return f(ctx)
	}
}
