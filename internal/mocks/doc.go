// Package mocks provides configurable test doubles for the store interfaces.
// Each mock exposes one function field per method; unset fields fall back to
// an in-memory store so tests only override the behavior they care about.
package mocks
