package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/euro-itinerary/internal/domain"
	"github.com/pkordes/euro-itinerary/internal/geo"
	"github.com/pkordes/euro-itinerary/internal/handler"
)

func TestAddCountry_EmptyBodyUsesDefaults(t *testing.T) {
	var got domain.CountryDraft
	svc := &mockPlannerServicer{
		addCountry: func(_ context.Context, d domain.CountryDraft) (domain.CountryVisit, error) {
			got = d
			return domain.CountryVisit{ID: "c1", Name: "Alemania", City: "Berlín", From: "2025-06-01", To: "2025-06-03"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trip/countries", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.CountryDraft{}, got)
	var body handler.CountryVisit
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "c1", body.ID)
	assert.Equal(t, "Berlín", body.City)
}

func TestAddCountry_UnknownCountry_Returns422(t *testing.T) {
	svc := &mockPlannerServicer{
		addCountry: func(context.Context, domain.CountryDraft) (domain.CountryVisit, error) {
			return domain.CountryVisit{}, fmt.Errorf("%w: unknown country %q", domain.ErrValidation, "Atlantis")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trip/countries", jsonBody(t, map[string]string{"name": "Atlantis"}))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `unknown country "Atlantis"`, decodeError(t, rec).Error.Message)
}

func TestUpdateCountry_PassesIDAndPatch(t *testing.T) {
	var gotID string
	var gotPatch domain.CountryPatch
	svc := &mockPlannerServicer{
		updateCountry: func(_ context.Context, id string, p domain.CountryPatch) (domain.CountryVisit, error) {
			gotID, gotPatch = id, p
			return domain.CountryVisit{ID: id, Name: "Italia", City: "Roma"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/trip/countries/c1", jsonBody(t, map[string]string{"name": "Italia"}))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", gotID)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Italia", *gotPatch.Name)
	assert.Nil(t, gotPatch.City)
}

func TestUpdateCountry_NotFound_Returns404(t *testing.T) {
	svc := &mockPlannerServicer{
		updateCountry: func(context.Context, string, domain.CountryPatch) (domain.CountryVisit, error) {
			return domain.CountryVisit{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/trip/countries/missing", jsonBody(t, map[string]string{}))
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "country not found", body.Error.Message)
}

func TestRemoveCountry(t *testing.T) {
	svc := &mockPlannerServicer{
		removeCountry: func(_ context.Context, id string) error {
			if id != "c1" {
				return domain.ErrNotFound
			}
			return nil
		},
	}
	h := newHTTPHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/trip/countries/c1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/trip/countries/c2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListGeoCountries(t *testing.T) {
	svc := &mockPlannerServicer{places: geo.Europe}

	req := httptest.NewRequest(http.MethodGet, "/geo/countries", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []geo.Country
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotEmpty(t, body)
	assert.Equal(t, "Alemania", body[0].Name)
	assert.Equal(t, "Berlín", body[0].Cities[0].Name)
	assert.InDelta(t, 52.52, body[0].Cities[0].Lat, 0.001)
}
