// Package logging provides concrete implementations of the datacommons.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to stderr with thread-safe output
//   - NullLogger: Discards all messages (useful for testing)
//
// ConsoleLogger keeps stdout untouched so commands can emit JSON there;
// all human-facing chatter goes to stderr. All logger implementations are
// safe for concurrent use by multiple goroutines.
package logging
