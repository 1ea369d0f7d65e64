// Package goturlogs is a small structured-logging facade. Severity-tagged
// text messages flow through a Logger, which filters them against a minimum
// severity threshold and fans accepted messages out, in registration order,
// to every registered writer. Each writer renders the message through a
// pluggable Formatter and emits the bytes to its own destination.
//
// The Logger is generic over the severity and message representations, so
// applications can substitute their own types as long as they satisfy the
// Severity and Message capabilities.
//
// Quick start with the default instantiation:
//
//	goturlogs.Default().AddWriter(
//		console.NewStdout[goturlogs.Level, goturlogs.Entry[goturlogs.Level]](
//			plaintext.Default[goturlogs.Level, goturlogs.Entry[goturlogs.Level]]()))
//
//	goturlogs.Info("hello, world") // prints "[INFO] hello, world"
package goturlogs
