// Package store defines the repository contracts for tasks and users.
// Handlers depend only on these interfaces; the in-memory and PostgreSQL
// implementations live under internal/platform and are chosen at startup.
package store
