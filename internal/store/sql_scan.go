package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/skillvance-api/models"
	sq "github.com/Masterminds/squirrel"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// queryOne runs query and scans its single result row with scan.
func queryOne[T any](ctx context.Context, db *DB, query sq.Sqlizer, scan func(scanner) (T, error)) (T, error) {
	var zero T

	q, args, err := query.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return zero, db.queryError(err)
	}

	return item, nil
}

// queryMany runs query and scans every result row with scan.
func queryMany[T any](ctx context.Context, db *DB, query sq.Sqlizer, scan func(scanner) (T, error)) ([]T, error) {
	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 16)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func scanAccount(row scanner) (models.AdminAccount, error) {
	var a models.AdminAccount
	err := row.Scan(&a.ID, &a.Identifier, &a.Name, &a.SecretHash, &a.Role, &a.CreatedAt)
	return a, err
}

func scanMessage(row scanner) (models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Program, &m.Message, &m.Status, &m.CreatedAt)
	return m, err
}

func scanInternship(row scanner) (models.Internship, error) {
	var (
		i      models.Internship
		skills string
	)
	err := row.Scan(&i.ID, &i.Title, &i.Category, &i.Description, &i.Duration,
		&i.TotalSeats, &i.AvailableSeats, &skills, &i.GoogleFormLink, &i.Active, &i.CreatedAt)
	if err != nil {
		return i, err
	}

	i.Skills, err = decodeSkills(skills)
	return i, err
}

func scanCertificate(row scanner) (models.Certificate, error) {
	var c models.Certificate
	err := row.Scan(&c.ID, &c.CertID, &c.StudentName, &c.CourseName, &c.IssueDate, &c.CreatedAt)
	return c, err
}

func scanSetting(row scanner) (models.Setting, error) {
	var s models.Setting
	err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt)
	return s, err
}

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.CreatedAt)
	return u, err
}
