// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a client for the skillvance API.
//
// [AdminClient] covers the operations an operator scripts from a terminal:
// signing in, checking the session, verifying certificates, listing open
// internships and downloading the CSV exports.
//
// Failure envelopes are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/skillvance-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/admin_client_mock.go -package=mock

// AdminClient talks to the skillvance API over HTTP. Implementations keep the
// session token between calls and attach it to guarded requests.
type AdminClient interface {
	// SetToken stores the bearer token sent with guarded requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login signs in and stores the issued token via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginData, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.AccountView, error)

	// Logout revokes the stored token and forgets it.
	Logout(ctx context.Context) error

	// VerifyCertificate looks a certificate up by its public id.
	VerifyCertificate(ctx context.Context, certID string) (models.Certificate, error)

	// ActiveInternships lists open internships, optionally of one category.
	ActiveInternships(ctx context.Context, category models.Category) ([]models.Internship, error)

	// ExportMessages streams the messages CSV into w.
	ExportMessages(ctx context.Context, w io.Writer) error

	// ExportCertificates streams the certificates CSV into w.
	ExportCertificates(ctx context.Context, w io.Writer) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
