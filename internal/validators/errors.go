package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrEmptyMessage       = errors.New("message is required")
	ErrInvalidStatus      = errors.New("status must be one of new, read, replied")
	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidCategory    = errors.New("unknown internship category")
	ErrEmptyDescription   = errors.New("description is required")
	ErrEmptyDuration      = errors.New("duration is required")
	ErrInvalidSeats       = errors.New("seats must satisfy 0 <= availableSeats <= totalSeats")
	ErrEmptyCertID        = errors.New("certificate id is required")
	ErrCertIDTooLong      = errors.New("certificate id must be at most 30 characters")
	ErrEmptyStudentName   = errors.New("student name is required")
	ErrEmptyCourseName    = errors.New("course name is required")
	ErrEmptyIssueDate     = errors.New("issue date is required")
	ErrEmptySettingKey    = errors.New("setting key is required")
	ErrEmptyPlatform      = errors.New("social platform name is required")
	ErrEnabledLinkNoURL   = errors.New("enabled social link needs a url")
	ErrEmptyIdentifier    = errors.New("email is required")
	ErrEmptySecret        = errors.New("password is required")
	ErrSecretTooShort     = errors.New("password must be at least 6 characters")
	ErrEmptyCurrentSecret = errors.New("current password is required")
	ErrEmptyNewIdentifier = errors.New("new email is required")
)
