package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/skillvance-api/internal/logger"
)

// writeCSV renders an export into memory before anything is written, so a
// failed export is reported as an error envelope.
func (h *Handler) writeCSV(w http.ResponseWriter, r *http.Request, filename string, export func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := export(r.Context(), &buf); err != nil {
		writeError(w, r, err, "csv export failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromRequest(r).Error().Err(err).Str("file", filename).Msg("writing csv export failed")
	}
}
