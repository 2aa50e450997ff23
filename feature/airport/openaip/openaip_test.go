package openaip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/weglide/flugfeld/feature/airport/models"
)

func rawJSON(t *testing.T, s string) rawItem {
	t.Helper()
	var item rawItem
	require.NoError(t, json.Unmarshal([]byte(s), &item))
	return item
}

const hahnweideJSON = `{
	"_id": "62614e95ff5ba291157758e7",
	"name": "KIRCHHEIM TECK HAHNWEIDE",
	"type": 1,
	"icaoCode": "EDST",
	"country": "DE",
	"geometry": {"coordinates": [9.372222, 48.630833]},
	"elevation": {"value": 351, "unit": 0},
	"frequencies": [
		{"value": "123.500", "type": 10, "name": "HAHNWEIDE INFO", "primary": false},
		{"value": "125.055", "type": 10, "name": "HAHNWEIDE SEGELFLUG", "primary": true}
	],
	"runways": [
		{"designator": "31", "trueHeading": 313, "mainRunway": false,
		 "surface": {"mainComposite": 2},
		 "dimension": {"length": {"value": 900, "unit": 0}, "width": {"value": 50, "unit": 0}}},
		{"designator": "13", "trueHeading": 133, "mainRunway": true,
		 "surface": {"mainComposite": 2},
		 "dimension": {"length": {"value": 900, "unit": 0}, "width": {"value": 50, "unit": 0}}}
	]
}`

func TestParseItem(t *testing.T) {
	airport, err := parseItem(rawJSON(t, hahnweideJSON))
	require.NoError(t, err)

	assert.Equal(t, "62614e95ff5ba291157758e7", airport.OpenAIPID)
	assert.Equal(t, "KIRCHHEIM TECK HAHNWEIDE", airport.OpenAIPName)
	assert.Equal(t, models.KindGliderSite, airport.Kind)
	assert.Equal(t, "EDST", *airport.ICAO)
	assert.Equal(t, "DE", airport.Region)
	assert.Equal(t, 9.372222, airport.Longitude)
	assert.Equal(t, 48.630833, airport.Latitude)
	assert.Equal(t, 351, airport.Elevation)

	// Primary frequency wins over the first listed.
	assert.Equal(t, "125.055", *airport.RadioFrequency)
	assert.Equal(t, "Info", *airport.RadioType)
	assert.Equal(t, "Hahnweide Segelflug", *airport.RadioDescription)

	// Main runway wins over the first listed.
	assert.Equal(t, "13", *airport.RunwayName)
	assert.Equal(t, "Grass", *airport.RunwaySurface)
	assert.Equal(t, 133, *airport.RunwayDirection)
	assert.Equal(t, 900, *airport.RunwayLength)
	assert.Equal(t, 50, *airport.RunwayWidth)

	// Fields the pipeline derives later start unknown.
	assert.Nil(t, airport.ID)
	assert.Nil(t, airport.Name)
	assert.Nil(t, airport.Launches)
	assert.Nil(t, airport.Reign)
}

func TestParseItem_NoFrequenciesOrRunways(t *testing.T) {
	airport, err := parseItem(rawJSON(t, `{
		"_id": "x", "name": "BARE STRIP", "type": 11, "country": "US",
		"geometry": {"coordinates": [-120.5, 44.1]},
		"elevation": {"value": 900, "unit": 0}
	}`))
	require.NoError(t, err)

	assert.Nil(t, airport.ICAO)
	assert.Nil(t, airport.RadioFrequency)
	assert.Nil(t, airport.RunwayName)
}

func TestParseItem_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			"unknown kind code",
			`{"_id": "x", "name": "N", "type": 99, "country": "DE",
			  "geometry": {"coordinates": [1, 2]}, "elevation": {"value": 1, "unit": 0}}`,
			"unknown airport type code 99",
		},
		{
			"elevation in feet",
			`{"_id": "x", "name": "N", "type": 0, "country": "DE",
			  "geometry": {"coordinates": [1, 2]}, "elevation": {"value": 1, "unit": 1}}`,
			"unexpected unit",
		},
		{
			"missing coordinate",
			`{"_id": "x", "name": "N", "type": 0, "country": "DE",
			  "geometry": {"coordinates": [1]}, "elevation": {"value": 1, "unit": 0}}`,
			"coordinates",
		},
		{
			"runway dimension in feet",
			`{"_id": "x", "name": "N", "type": 0, "country": "DE",
			  "geometry": {"coordinates": [1, 2]}, "elevation": {"value": 1, "unit": 0},
			  "runways": [{"designator": "09", "trueHeading": 90, "mainRunway": true,
			    "surface": {"mainComposite": 0},
			    "dimension": {"length": {"value": 3000, "unit": 1}, "width": {"value": 100, "unit": 1}}}]}`,
			"unexpected unit",
		},
		{
			"heading out of range",
			`{"_id": "x", "name": "N", "type": 0, "country": "DE",
			  "geometry": {"coordinates": [1, 2]}, "elevation": {"value": 1, "unit": 0},
			  "runways": [{"designator": "09", "trueHeading": 450, "mainRunway": true,
			    "surface": {"mainComposite": 0},
			    "dimension": {"length": {"value": 3000, "unit": 0}, "width": {"value": 100, "unit": 0}}}]}`,
			"out of range",
		},
		{
			"unknown surface code",
			`{"_id": "x", "name": "N", "type": 0, "country": "DE",
			  "geometry": {"coordinates": [1, 2]}, "elevation": {"value": 1, "unit": 0},
			  "runways": [{"designator": "09", "trueHeading": 90, "mainRunway": true,
			    "surface": {"mainComposite": 77},
			    "dimension": {"length": {"value": 3000, "unit": 0}, "width": {"value": 100, "unit": 0}}}]}`,
			"unknown runway surface code 77",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseItem(rawJSON(t, tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchAll_Pagination(t *testing.T) {
	// 3 airports with a page size of 2 means pages 1 and 2.
	itemFor := func(i int) string {
		return fmt.Sprintf(`{"_id": "id-%d", "name": "FIELD %d", "type": 0, "country": "DE",
			"geometry": {"coordinates": [9.1, 48.7]}, "elevation": {"value": 100, "unit": 0}}`, i, i)
	}
	pages := map[string]string{
		"":  fmt.Sprintf(`{"totalCount": 3, "items": [%s, %s]}`, itemFor(1), itemFor(2)),
		"1": fmt.Sprintf(`{"totalCount": 3, "items": [%s, %s]}`, itemFor(1), itemFor(2)),
		"2": fmt.Sprintf(`{"totalCount": 3, "items": [%s]}`, itemFor(3)),
	}

	var apiKeys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeys = append(apiKeys, r.Header.Get("x-openaip-api-key"))
		body, ok := pages[r.URL.Query().Get("page")]
		require.True(t, ok, "unexpected page %q", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, APIKey: "secret", PageSize: 2}, zap.NewNop())
	airports, err := client.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, airports, 3)
	assert.Equal(t, "id-1", airports[0].OpenAIPID)
	assert.Equal(t, "id-3", airports[2].OpenAIPID)
	for _, key := range apiKeys {
		assert.Equal(t, "secret", key)
	}
}

func TestFetchAll_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL}, zap.NewNop())
	_, err := client.FetchAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
