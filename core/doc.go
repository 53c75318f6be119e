// Package core holds the message value that flows through the pipeline.
//
// A Message is created by a producer at call time, travels through the
// worker queue, and is destroyed after formatting. It is an immutable
// value: the module path is copied at construction so that a producer
// reusing its slice cannot change a message that is already queued.
package core
