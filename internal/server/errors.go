// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPHandler is returned when there is nothing to serve.
var errNoHTTPHandler = errors.New("server: HTTP handler and address are required")
