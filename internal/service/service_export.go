package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/skillvance-api/internal/store"
	"github.com/MKhiriev/skillvance-api/models"
)

var (
	messageCSVHeader     = []string{"Name", "Email", "Phone", "Program", "Message", "Status", "Date"}
	certificateCSVHeader = []string{"Certificate ID", "Student Name", "Course Name", "Issue Date"}
)

// exportService writes the current records as CSV on every call. Nothing
// is cached or persisted.
type exportService struct {
	messageRepository     store.MessageRepository
	certificateRepository store.CertificateRepository
}

func NewExportService(messageRepository store.MessageRepository, certificateRepository store.CertificateRepository) ExportService {
	return &exportService{
		messageRepository:     messageRepository,
		certificateRepository: certificateRepository,
	}
}

func (s *exportService) ExportMessages(ctx context.Context, w io.Writer) error {
	messages, err := s.messageRepository.ListMessages(ctx, models.MessageFilter{})
	if err != nil {
		return storeError(err)
	}

	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, []string{m.Name, m.Email, m.Phone, m.Program, m.Message, string(m.Status), m.CreatedAt.UTC().Format(time.RFC3339)})
	}

	return writeCSV(w, messageCSVHeader, rows)
}

func (s *exportService) ExportCertificates(ctx context.Context, w io.Writer) error {
	certificates, err := s.certificateRepository.ListCertificates(ctx)
	if err != nil {
		return storeError(err)
	}

	rows := make([][]string, 0, len(certificates))
	for _, c := range certificates {
		rows = append(rows, []string{c.CertID, c.StudentName, c.CourseName, c.IssueDate})
	}

	return writeCSV(w, certificateCSVHeader, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing csv rows: %w", err)
	}
	return nil
}
