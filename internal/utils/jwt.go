package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/skillvance-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs an HMAC-SHA256 JWT describing session.
//
// The token carries the standard claims iss, sub (account ID), jti (token
// ID), iat and exp plus the private "identifier" and "role" claims.
// issuer, signKey, TokenID and a non-zero ExpiresAt are required.
//
// Example usage:
//
//	signed, err := utils.GenerateSessionToken("skillvance-api", "secret", session)
func GenerateSessionToken(issuer, signKey string, session models.Session) (string, error) {
	if issuer == "" || signKey == "" || session.TokenID == "" || session.ExpiresAt.IsZero() {
		return "", errors.New("invalid params for generating session token")
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.AccountID, 10),
			ID:        session.TokenID,
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
		Identifier: session.Identifier,
		Role:       session.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken verifies tokenString and rebuilds the session it carries.
//
// Validation includes the HS256 signature, the iss claim, presence of exp
// and expiry relative to now. A token is expired once now reaches exp.
// Subject and token ID must be present.
func ParseSessionToken(tokenString, signKey, issuer string, now func() time.Time) (models.Session, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || claims.ID == "" {
		return models.Session{}, errors.New("token has no subject or id")
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during converting subject to account id: %w", err)
	}

	session := models.Session{
		AccountID:  accountID,
		Identifier: claims.Identifier,
		Role:       claims.Role,
		TokenID:    claims.ID,
		Token:      tokenString,
		ExpiresAt:  claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}

	return session, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
