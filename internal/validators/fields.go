package validators

// Field names accepted by Validate to restrict checking to a subset of fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldMessage     = "message"
	FieldStatus      = "status"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldSeats       = "seats"
	FieldCertID      = "cert_id"
	FieldStudentName = "student_name"
	FieldCourseName  = "course_name"
	FieldIssueDate   = "issue_date"
	FieldKey         = "key"

	FieldIdentifier    = "identifier"
	FieldSecret        = "secret"
	FieldCurrentSecret = "current_secret"
	FieldNewSecret     = "new_secret"
	FieldNewIdentifier = "new_identifier"
)

// MinSecretLength is the shortest admin password accepted on change.
const MinSecretLength = 6
