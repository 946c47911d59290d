// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionLifetime is how long a session stays valid after issuance.
const SessionLifetime = 24 * time.Hour

// Session is a time-bounded proof of an authenticated admin identity.
//
// Token is the signed JWT handed to the client. TokenID mirrors the "jti"
// claim and is the key used when the session is revoked on logout.
type Session struct {
	AccountID  int64     `json:"-"`
	Identifier string    `json:"identifier"`
	Role       Role      `json:"role"`
	TokenID    string    `json:"-"`
	Token      string    `json:"token"`
	IssuedAt   time.Time `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// Valid reports whether the session has not yet expired at now.
// A session whose ExpiresAt is equal to now is already expired.
func (s Session) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// SessionClaims is the JWT claim set carried by a session token.
//
// Subject holds the account ID, ID holds the token ID.
type SessionClaims struct {
	jwt.RegisteredClaims

	Identifier string `json:"identifier"`
	Role       Role   `json:"role"`
}
