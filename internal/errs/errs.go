// Package errs define custom error types and utilities.
//
// Its purpose is to give every failure that reaches the client a single,
// predictable shape: HTTPError carries the status, a machine-friendly code
// and the message shown to the caller.
package errs
