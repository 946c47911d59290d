package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/skillvance-api/models"
)

// RecordValidator validates the content entities managed from the admin
// area and submitted through the public contact form.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	case models.MessageStatus:
		return v.validateMessage(models.Message{Status: value}, FieldStatus)

	case models.Internship:
		return v.validateInternship(value, fields...)
	case *models.Internship:
		return v.validateInternship(*value, fields...)

	case models.Certificate:
		return v.validateCertificate(value, fields...)
	case *models.Certificate:
		return v.validateCertificate(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.Setting:
		return v.validateSetting(value, fields...)
	case *models.Setting:
		return v.validateSetting(*value, fields...)

	case models.SocialLinks:
		return v.validateSocialLinks(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateMessage(m models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldMessage, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(m.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(m.Email) {
				return ErrInvalidEmail
			}
		case FieldMessage:
			if isBlank(m.Message) {
				return ErrEmptyMessage
			}
		case FieldStatus:
			if !m.Status.Valid() {
				return ErrInvalidStatus
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateInternship(i models.Internship, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCategory, FieldDescription, FieldDuration, FieldSeats}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(i.Title) {
				return ErrEmptyTitle
			}
		case FieldCategory:
			if !i.Category.Valid() {
				return ErrInvalidCategory
			}
		case FieldDescription:
			if isBlank(i.Description) {
				return ErrEmptyDescription
			}
		case FieldDuration:
			if isBlank(i.Duration) {
				return ErrEmptyDuration
			}
		case FieldSeats:
			if i.TotalSeats < 0 || i.AvailableSeats < 0 || i.AvailableSeats > i.TotalSeats {
				return ErrInvalidSeats
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateCertificate(c models.Certificate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCertID, FieldStudentName, FieldCourseName, FieldIssueDate}
	}

	for _, f := range fields {
		switch f {
		case FieldCertID:
			if isBlank(c.CertID) {
				return ErrEmptyCertID
			}
			if utf8.RuneCountInString(c.CertID) > models.MaxCertIDLength {
				return ErrCertIDTooLong
			}
		case FieldStudentName:
			if isBlank(c.StudentName) {
				return ErrEmptyStudentName
			}
		case FieldCourseName:
			if isBlank(c.CourseName) {
				return ErrEmptyCourseName
			}
		case FieldIssueDate:
			if isBlank(c.IssueDate) {
				return ErrEmptyIssueDate
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(u.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isEmail(u.Email) {
				return ErrInvalidEmail
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateSetting(s models.Setting, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey}
	}

	for _, f := range fields {
		switch f {
		case FieldKey:
			if isBlank(s.Key) {
				return ErrEmptySettingKey
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RecordValidator) validateSocialLinks(links models.SocialLinks) error {
	for platform, link := range links {
		if isBlank(platform) {
			return ErrEmptyPlatform
		}
		if link.Enabled && isBlank(link.URL) {
			return fmt.Errorf("%w: %s", ErrEnabledLinkNoURL, platform)
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isEmail(s string) bool {
	if isBlank(s) {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
