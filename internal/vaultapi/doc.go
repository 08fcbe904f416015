// Package vaultapi is the HTTP client for the remote vault API.
//
// The API has three operations:
//
//	GET  /api/entries/{userId}  list a user's entries
//	POST /api/save/{userId}     save a new entry
//	POST /api/generate          generate a password
//
// Failures come back as one of two error types so callers can tell them
// apart with errors.As or the IsTransport / IsServer helpers:
//
//   - *TransportError: the request never produced an HTTP response
//     (connection refused, timeout, cancelled context).
//   - *ServerError: the server answered with a non-2xx status, or with a
//     2xx body that could not be decoded.
//
// The client keeps no state between calls and is safe for concurrent use.
package vaultapi
