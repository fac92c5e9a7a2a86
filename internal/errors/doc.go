// Package errors provides the structured error type used across CineVerse.
//
// Every error carries a code and a category:
//
//   - E1xx: configuration (file, parse, validation)
//   - E2xx: live protocol (malformed or unroutable client messages)
//   - E3xx: runtime (handler panics, render and store failures)
//
// Errors are created from the registry and enriched with builders:
//
//	err := errors.New("E102").
//	    WithDetail("line 3: unexpected token").
//	    Wrap(parseErr)
//
// Format renders an error for the terminal; the CLI prints it on failure.
package errors
