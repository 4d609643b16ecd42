// Package http wires the REST surface of the document vault: route
// registration on a chi router, trace-id and request-logging middleware,
// the bearer-token auth gate, and the seven API handlers (health,
// signup, login, upload, mydocs, delete, search) plus static serving of
// uploaded blobs.
package http
