// Package memory provides process-local implementations of the store
// interfaces. State lives in an explicit store value created at startup and
// is lost when the process exits. Every operation is safe for concurrent use.
package memory
