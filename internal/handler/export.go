// Package handler — export.go implements GET /export.
// Returns the whole itinerary as a flat table, one row per activity.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkordes/euro-itinerary/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"date", "city", "country", "time", "description", "attachments",
}

// ExportRow is the JSON representation of one export row.
type ExportRow struct {
	Date        string   `json:"date"`
	City        *string  `json:"city,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Time        *string  `json:"time,omitempty"`
	Description *string  `json:"description,omitempty"`
	Attachments []string `json:"attachments"`
}

// GetExport implements GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows := s.export.Export()

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, buildJSONResponse(rows))
	case "csv":
		writeCSV(w, rows)
	default:
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json or csv"))
	}
}

// buildJSONResponse converts domain rows to the JSON response rows.
func buildJSONResponse(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToJSONRow(r))
	}
	return out
}

// writeCSV encodes domain rows as CSV.
// Attachment names within a row are pipe-separated ("|") to keep each
// activity on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// domainRowToJSONRow maps a domain.ExportRow to its JSON type.
// Fields that are empty strings become nil pointers (omitted in JSON).
func domainRowToJSONRow(r domain.ExportRow) ExportRow {
	row := ExportRow{
		Date:        r.Date,
		City:        optionalString(r.City),
		Country:     optionalString(r.Country),
		Time:        optionalString(r.Time),
		Description: optionalString(r.Description),
		Attachments: r.Attachments,
	}
	if row.Attachments == nil {
		row.Attachments = []string{}
	}
	return row
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.Date,
		r.City,
		r.Country,
		r.Time,
		r.Description,
		strings.Join(r.Attachments, "|"),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
