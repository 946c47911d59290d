// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoSessionToken is returned by the session guard when the request
	// carries neither an "Authorization" header nor an admin cookie session.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when the {id} URL parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrNoSession is returned when a guarded handler runs without a session
	// on the request context.
	ErrNoSession = errors.New("no session in request context")
)
