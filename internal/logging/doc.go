// Package logging provides concrete implementations of the wppkg.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - ZapLogger: Writes structured JSON lines through go.uber.org/zap
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
