// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the skillvance API.
//
// It maps subcommands onto [adapter.AdminClient] calls, signs in for the
// guarded ones and prints results to the configured output.
package client
