// Package logging provides structured logging built on zap.
//
// Production output is JSON with ISO8601 timestamps; development output
// is colorized console text. Named child loggers are used per subsystem.
package logging
