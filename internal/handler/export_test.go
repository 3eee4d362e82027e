package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/handler"
)

// ---- mock ExportServicer ---------------------------------------------------

type mockExportServicer struct {
	export func() []domain.ExportRow
}

func (m *mockExportServicer) Export() []domain.ExportRow {
	return m.export()
}

// compile-time check: mockExportServicer must satisfy handler.ExportServicer.
var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newExportHTTPHandler wires a Server with only the export service mock.
func newExportHTTPHandler(rows ...domain.ExportRow) http.Handler {
	svc := &mockExportServicer{export: func() []domain.ExportRow { return rows }}
	return handler.NewServer(nil, svc, nil).Routes()
}

// exportRowFixture returns a fully-populated domain.ExportRow for testing.
func exportRowFixture() domain.ExportRow {
	return domain.ExportRow{
		Date:        "2025-06-01",
		City:        "París",
		Country:     "Francia",
		Time:        "09:00",
		Description: "Louvre",
		Attachments: []string{"ticket.pdf", "map.png"},
	}
}

func getExport(h http.Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/export"+query, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET /export — JSON ----------------------------------------------------

func TestGetExport_DefaultJSON_EmptyResult(t *testing.T) {
	rec := getExport(newExportHTTPHandler(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetExport_FormatJSON_ExplicitParam(t *testing.T) {
	rec := getExport(newExportHTTPHandler(exportRowFixture()), "?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []handler.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Description)
	assert.Equal(t, "Louvre", *rows[0].Description)
	assert.Equal(t, []string{"ticket.pdf", "map.png"}, rows[0].Attachments)
}

func TestGetExport_JSON_DayWithoutActivities_EmptyFields(t *testing.T) {
	rec := getExport(newExportHTTPHandler(domain.ExportRow{Date: "2025-06-02"}), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []handler.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].City)
	assert.Nil(t, rows[0].Time)
	assert.NotNil(t, rows[0].Attachments)
}

func TestGetExport_UnknownFormat_Returns422(t *testing.T) {
	rec := getExport(newExportHTTPHandler(), "?format=xml")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /export — CSV -----------------------------------------------------

func TestGetExport_CSV_EmptyResult_HasHeaderRow(t *testing.T) {
	rec := getExport(newExportHTTPHandler(), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "date,"), "CSV should start with header row, got: %q", body)
}

func TestGetExport_CSV_AttachmentsJoinedWithPipe(t *testing.T) {
	rec := getExport(newExportHTTPHandler(exportRowFixture()), "?format=csv")

	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	// Header + 1 data row.
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-06-01,París,Francia,09:00,Louvre,ticket.pdf|map.png", lines[1])
}
