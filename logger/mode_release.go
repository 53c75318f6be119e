//go:build !dev

package logger

// autoMode resolves ModeAuto in release builds: rotate to files.
const autoMode = ModeFile
