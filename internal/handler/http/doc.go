// Package http implements the HTTP transport of the skillvance API.
//
// It wires the public read surface, the admin auth routes and the guarded
// admin CRUD routes onto a chi router. Tracing, access logging, response
// compression and the session guard are handled here before requests reach
// the service layer.
package http
