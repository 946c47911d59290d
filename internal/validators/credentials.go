package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/skillvance-api/models"
)

// CredentialValidator validates login and account-change payloads.
type CredentialValidator struct {
}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SecretChange:
		return v.validateSecretChange(value, fields...)
	case *models.SecretChange:
		return v.validateSecretChange(*value, fields...)

	case models.IdentifierChange:
		return v.validateIdentifierChange(value)
	case *models.IdentifierChange:
		return v.validateIdentifierChange(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if isBlank(c.Identifier) {
				return ErrEmptyIdentifier
			}
		case FieldSecret:
			if c.Secret == "" {
				return ErrEmptySecret
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CredentialValidator) validateSecretChange(c models.SecretChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentSecret, FieldNewSecret}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentSecret:
			if c.CurrentSecret == "" {
				return ErrEmptyCurrentSecret
			}
		case FieldNewSecret:
			if utf8.RuneCountInString(c.NewSecret) < MinSecretLength {
				return ErrSecretTooShort
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CredentialValidator) validateIdentifierChange(c models.IdentifierChange) error {
	if isBlank(c.NewIdentifier) {
		return ErrEmptyNewIdentifier
	}
	return nil
}
