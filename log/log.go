// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log is the logging facade used throughout this module. By default it
// forwards to the Datadog agent logger, and embedders may route messages to
// their own logger with [SetBackend].
package log

import (
	"fmt"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of functions log messages are dispatched to. Fields left
// nil when calling [SetBackend] fall back to the default backend.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	defaultBackend = Backend{
		Trace: ddlog.Tracef,
		Debug: ddlog.Debugf,
		Info:  ddlog.Infof,
		Warn: func(format string, args ...any) {
			_ = ddlog.Warnf(format, args...)
		},
		Errorf:    ddlog.Errorf,
		Criticalf: ddlog.Criticalf,
	}

	backend atomic.Pointer[Backend]
)

func init() {
	ResetBackend()
}

// SetBackend replaces the current logging backend.
func SetBackend(b Backend) {
	if b.Trace == nil {
		b.Trace = defaultBackend.Trace
	}
	if b.Debug == nil {
		b.Debug = defaultBackend.Debug
	}
	if b.Info == nil {
		b.Info = defaultBackend.Info
	}
	if b.Warn == nil {
		b.Warn = defaultBackend.Warn
	}
	if b.Errorf == nil {
		b.Errorf = defaultBackend.Errorf
	}
	if b.Criticalf == nil {
		b.Criticalf = defaultBackend.Criticalf
	}
	backend.Store(&b)
}

// ResetBackend restores the default backend, which logs via the Datadog agent
// logger.
func ResetBackend() {
	b := defaultBackend
	backend.Store(&b)
}

// Trace logs a message at the trace level.
func Trace(format string, args ...any) {
	backend.Load().Trace(format, args...)
}

// Debug logs a message at the debug level.
func Debug(format string, args ...any) {
	backend.Load().Debug(format, args...)
}

// Info logs a message at the info level.
func Info(format string, args ...any) {
	backend.Load().Info(format, args...)
}

// Warn logs a message at the warning level.
func Warn(format string, args ...any) {
	backend.Load().Warn(format, args...)
}

// Errorf logs a message at the error level, and returns it as an error. The
// format supports the %w verb, and the returned error wraps accordingly.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	_ = backend.Load().Errorf(format, args...)
	return err
}

// Criticalf logs a message at the critical level, and returns it as an error.
// The format supports the %w verb, and the returned error wraps accordingly.
func Criticalf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	_ = backend.Load().Criticalf(format, args...)
	return err
}
