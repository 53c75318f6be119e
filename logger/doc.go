// Package logger is the producer-facing front of the pipeline: the
// Settings bundle, the Logger dispatch handle, and the single worker
// goroutine that drains the message queue into a sink.
//
// A Logger is either enabled or disabled. Disabled loggers do nothing at
// all: no queue, no goroutine, no files. An enabled Logger becomes live
// when Start spawns the worker and publishes the queue's sender; Log
// calls from any goroutine then hand messages over without ever blocking
// or failing. Messages logged before Start, after the worker has died,
// or while the queue is full are silently dropped; logging must never
// perturb the application's control flow.
//
// The worker is the only goroutine touching the sink, the line buffer
// and the file handle, so those need no locks. It stops when the queue
// is closed (Handle.Close) or when any sink I/O fails; an I/O failure
// is terminal for the rest of the process life, reported only on the
// diagnostic writer.
//
// Settings are fixed before Start and never change afterwards; a
// different configuration means constructing a new Logger.
package logger
