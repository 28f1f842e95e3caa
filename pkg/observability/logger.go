// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides logging for the runner.
package observability

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger is the structured logger interface.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// Level is a log severity level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name to a Level. Unknown names map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// logger is the default implementation backed by the standard log package.
type logger struct {
	min    Level
	out    *log.Logger
	fields []Field
}

// NewLogger creates a new logger filtering below the given level.
func NewLogger(level string) Logger {
	return &logger{
		min: ParseLevel(level),
		out: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *logger) log(lv Level, tag, msg string, fields []Field) {
	if lv < l.min {
		return
	}
	all := append(append([]Field{}, l.fields...), fields...)
	var b strings.Builder
	b.WriteString("[" + tag + "] " + msg)
	for _, f := range all {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	l.out.Println(b.String())
}

func (l *logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, "DEBUG", msg, fields) }
func (l *logger) Info(msg string, fields ...Field)  { l.log(LevelInfo, "INFO", msg, fields) }
func (l *logger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, "WARN", msg, fields) }
func (l *logger) Error(msg string, fields ...Field) { l.log(LevelError, "ERROR", msg, fields) }

func (l *logger) With(fields ...Field) Logger {
	return &logger{
		min:    l.min,
		out:    l.out,
		fields: append(append([]Field{}, l.fields...), fields...),
	}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// Nop returns a logger that discards everything. Useful in tests.
func Nop() Logger {
	return &logger{min: LevelError + 1, out: log.New(os.Stderr, "", 0)}
}
