// Package domain contains the task and user records, the partial-update
// patches applied to them, and the validation errors shared by the API and
// store layers. It has no knowledge of HTTP or SQL.
package domain
