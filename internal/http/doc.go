// Package http provides the HTTP transport for the room booking service:
// a router over net/http, JSON request/response handling, and the request
// logging middleware. It is the process boundary the view layer talks to;
// all booking semantics live in the application and scheduler packages.
package http
