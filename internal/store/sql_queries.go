package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tableAccounts        = "admin_accounts"
	tableRevokedSessions = "revoked_sessions"
	tableMessages        = "messages"
	tableInternships     = "internships"
	tableCertificates    = "certificates"
	tableSocialLinks     = "social_links"
	tableSettings        = "settings"
	tableUsers           = "users"

	// socialLinksRowID is the primary key of the social links singleton.
	socialLinksRowID = 1
)

var (
	accountColumns     = []string{"id", "identifier", "name", "secret_hash", "role", "created_at"}
	messageColumns     = []string{"id", "name", "email", "phone", "program", "message", "status", "created_at"}
	internshipColumns  = []string{"id", "title", "category", "description", "duration", "total_seats", "available_seats", "skills", "google_form_link", "active", "created_at"}
	certificateColumns = []string{"id", "cert_id", "student_name", "course_name", "issue_date", "created_at"}
	settingColumns     = []string{"key", "value", "updated_at"}
	userColumns        = []string{"id", "name", "email", "phone", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── admin accounts ───────────────────────────────────────────────────────────

func buildCreateAccountQuery(b sq.StatementBuilderType, a models.AdminAccount) sq.InsertBuilder {
	return b.Insert(tableAccounts).
		Columns("identifier", "name", "secret_hash", "role", "created_at").
		Values(a.Identifier, a.Name, a.SecretHash, string(a.Role), a.CreatedAt).
		Suffix(returning(accountColumns))
}

func buildFindAccountQuery(b sq.StatementBuilderType, where sq.Eq) sq.SelectBuilder {
	return b.Select(accountColumns...).From(tableAccounts).Where(where)
}

func buildListAccountsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(accountColumns...).From(tableAccounts).OrderBy("id ASC")
}

// ── revoked sessions ─────────────────────────────────────────────────────────

func buildRevokeSessionQuery(b sq.StatementBuilderType, tokenID string, expiresAt time.Time) sq.InsertBuilder {
	return b.Insert(tableRevokedSessions).
		Columns("token_id", "expires_at").
		Values(tokenID, expiresAt.UTC()).
		Suffix("ON CONFLICT (token_id) DO NOTHING")
}

func buildIsRevokedQuery(b sq.StatementBuilderType, tokenID string) sq.SelectBuilder {
	return b.Select("COUNT(*)").From(tableRevokedSessions).Where(sq.Eq{"token_id": tokenID})
}

func buildPruneRevokedQuery(b sq.StatementBuilderType, now time.Time) sq.DeleteBuilder {
	return b.Delete(tableRevokedSessions).Where(sq.LtOrEq{"expires_at": now.UTC()})
}

// ── messages ─────────────────────────────────────────────────────────────────

func buildCreateMessageQuery(b sq.StatementBuilderType, m models.Message) sq.InsertBuilder {
	return b.Insert(tableMessages).
		Columns("name", "email", "phone", "program", "message", "status", "created_at").
		Values(m.Name, m.Email, m.Phone, m.Program, m.Message, string(m.Status), m.CreatedAt).
		Suffix(returning(messageColumns))
}

func buildListMessagesQuery(b sq.StatementBuilderType, filter models.MessageFilter) sq.SelectBuilder {
	q := b.Select(messageColumns...).From(tableMessages)
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	return q.OrderBy("created_at DESC", "id DESC")
}

func buildUpdateMessageQuery(b sq.StatementBuilderType, m models.Message) sq.UpdateBuilder {
	return b.Update(tableMessages).
		Set("name", m.Name).
		Set("email", m.Email).
		Set("phone", m.Phone).
		Set("program", m.Program).
		Set("message", m.Message).
		Set("status", string(m.Status)).
		Where(sq.Eq{"id": m.ID}).
		Suffix(returning(messageColumns))
}

// ── internships ──────────────────────────────────────────────────────────────

func buildCreateInternshipQuery(b sq.StatementBuilderType, i models.Internship) (sq.InsertBuilder, error) {
	skills, err := encodeSkills(i.Skills)
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	return b.Insert(tableInternships).
		Columns("title", "category", "description", "duration", "total_seats", "available_seats", "skills", "google_form_link", "active", "created_at").
		Values(i.Title, string(i.Category), i.Description, i.Duration, i.TotalSeats, i.AvailableSeats, skills, i.GoogleFormLink, i.Active, i.CreatedAt).
		Suffix(returning(internshipColumns)), nil
}

func buildListInternshipsQuery(b sq.StatementBuilderType, filter models.InternshipFilter) sq.SelectBuilder {
	q := b.Select(internshipColumns...).From(tableInternships)
	if filter.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": string(filter.Category)})
	}
	return q.OrderBy("created_at DESC", "id DESC")
}

func buildUpdateInternshipQuery(b sq.StatementBuilderType, i models.Internship) (sq.UpdateBuilder, error) {
	skills, err := encodeSkills(i.Skills)
	if err != nil {
		return sq.UpdateBuilder{}, err
	}

	return b.Update(tableInternships).
		Set("title", i.Title).
		Set("category", string(i.Category)).
		Set("description", i.Description).
		Set("duration", i.Duration).
		Set("total_seats", i.TotalSeats).
		Set("available_seats", i.AvailableSeats).
		Set("skills", skills).
		Set("google_form_link", i.GoogleFormLink).
		Set("active", i.Active).
		Where(sq.Eq{"id": i.ID}).
		Suffix(returning(internshipColumns)), nil
}

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(raw), nil
}

func decodeSkills(raw string) ([]string, error) {
	skills := []string{}
	if raw == "" {
		return skills, nil
	}
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return skills, nil
}

// ── certificates ─────────────────────────────────────────────────────────────

func buildCreateCertificateQuery(b sq.StatementBuilderType, c models.Certificate) sq.InsertBuilder {
	return b.Insert(tableCertificates).
		Columns("cert_id", "student_name", "course_name", "issue_date", "created_at").
		Values(c.CertID, c.StudentName, c.CourseName, c.IssueDate, c.CreatedAt).
		Suffix(returning(certificateColumns))
}

func buildFindCertificateByCertIDQuery(b sq.StatementBuilderType, certID string) sq.SelectBuilder {
	return b.Select(certificateColumns...).
		From(tableCertificates).
		Where(sq.Expr("UPPER(cert_id) = UPPER(?)", certID))
}

func buildListCertificatesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(certificateColumns...).From(tableCertificates).OrderBy("created_at DESC", "id DESC")
}

func buildUpdateCertificateQuery(b sq.StatementBuilderType, c models.Certificate) sq.UpdateBuilder {
	return b.Update(tableCertificates).
		Set("cert_id", c.CertID).
		Set("student_name", c.StudentName).
		Set("course_name", c.CourseName).
		Set("issue_date", c.IssueDate).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning(certificateColumns))
}

// ── social links, settings, users ────────────────────────────────────────────

func buildSaveSocialLinksQuery(b sq.StatementBuilderType, links models.SocialLinks, updatedAt time.Time) (sq.InsertBuilder, error) {
	raw, err := json.Marshal(links)
	if err != nil {
		return sq.InsertBuilder{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return b.Insert(tableSocialLinks).
		Columns("id", "links", "updated_at").
		Values(socialLinksRowID, string(raw), updatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET links = excluded.links, updated_at = excluded.updated_at"), nil
}

func buildGetSocialLinksQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("links").From(tableSocialLinks).Where(sq.Eq{"id": socialLinksRowID})
}

func buildUpsertSettingQuery(b sq.StatementBuilderType, s models.Setting) sq.InsertBuilder {
	return b.Insert(tableSettings).
		Columns(settingColumns...).
		Values(s.Key, s.Value, s.UpdatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at " + returning(settingColumns))
}

func buildListSettingsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(settingColumns...).From(tableSettings).OrderBy("key ASC")
}

func buildCreateUserQuery(b sq.StatementBuilderType, u models.User) sq.InsertBuilder {
	return b.Insert(tableUsers).
		Columns("name", "email", "phone", "created_at").
		Values(u.Name, u.Email, u.Phone, u.CreatedAt).
		Suffix(returning(userColumns))
}

func buildListUsersQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(tableUsers).OrderBy("created_at DESC", "id DESC")
}

func buildDeleteByIDQuery(b sq.StatementBuilderType, table string, id int64) sq.DeleteBuilder {
	return b.Delete(table).Where(sq.Eq{"id": id})
}
