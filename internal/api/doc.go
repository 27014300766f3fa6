// Package api handles incoming HTTP requests for the task and user
// resources: path and body parsing, request validation, and mapping store
// results and errors to JSON responses. Handlers hold no request state; every
// request re-reads from the injected store.
package api
