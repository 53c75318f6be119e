//go:build dev

package logger

// autoMode resolves ModeAuto under the dev build tag: echo to the
// console instead of writing files.
const autoMode = ModeConsole
