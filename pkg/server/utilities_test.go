package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raterudder/solarledger/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleListUtilities(t *testing.T) {
	srv := newTestServer(nil)

	w := httptest.NewRecorder()
	srv.handleListUtilities(w, httptest.NewRequest("GET", "/api/list/utilities", nil))

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var utilities []types.UtilityProviderInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&utilities))
	require.Len(t, utilities, 3)
	assert.Equal(t, types.UtilitySCE, utilities[0].ID)
	for _, u := range utilities {
		assert.NotEmpty(t, u.Name, "utility must have a name")
		assert.NotEmpty(t, u.Rates, "utility %s must have rates", u.ID)
		assert.Greater(t, u.TOU.Peak, u.TOU.OffPeak)
		for _, r := range u.Rates {
			assert.True(t, r.Tabulated)
		}
	}
}

func TestHandleListOptions(t *testing.T) {
	srv := newTestServer(nil)

	w := httptest.NewRecorder()
	srv.handleListOptions(w, httptest.NewRequest("GET", "/api/list/options", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var opts optionsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&opts))
	assert.Len(t, opts.NEMVersions, 3)
	assert.Len(t, opts.Programs, 4)
	assert.Contains(t, opts.EscalatorPresets, 2.9)
	assert.Equal(t, 12.0, opts.NEM2ConnectionFee)
	assert.Equal(t, 18, opts.MonthsBeforeCredit)
	assert.Equal(t, types.CurrentProfileVersion, opts.CurrentProfileVersion)
}

func TestHandleRates(t *testing.T) {
	srv := newTestServer(nil)

	get := func(query string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.handleRates(w, httptest.NewRequest("GET", "/api/rates?"+query, nil))
		return w
	}

	t.Run("range", func(t *testing.T) {
		w := get("utility=SCE&from=2020&to=2022")
		require.Equal(t, http.StatusOK, w.Code)

		var rates []types.UtilityRateInYear
		require.NoError(t, json.NewDecoder(w.Body).Decode(&rates))
		require.Len(t, rates, 3)
		assert.Equal(t, 2020, rates[0].Year)
		assert.Equal(t, 2022, rates[2].Year)
		assert.Less(t, rates[0].DollarsPerKWH, rates[2].DollarsPerKWH)
	})

	t.Run("care discount", func(t *testing.T) {
		var full, care []types.UtilityRateInYear
		require.NoError(t, json.NewDecoder(get("utility=PGE&from=2024&to=2024").Body).Decode(&full))
		require.NoError(t, json.NewDecoder(get("utility=PGE&from=2024&to=2024&care=true").Body).Decode(&care))
		require.Len(t, full, 1)
		require.Len(t, care, 1)
		assert.InDelta(t, full[0].DollarsPerKWH*0.7, care[0].DollarsPerKWH, 1e-9)
	})

	t.Run("defaults to now", func(t *testing.T) {
		w := get("utility=SDGE")
		require.Equal(t, http.StatusOK, w.Code)

		var rates []types.UtilityRateInYear
		require.NoError(t, json.NewDecoder(w.Body).Decode(&rates))
		require.NotEmpty(t, rates)
		assert.Equal(t, 2025, rates[len(rates)-1].Year)
	})

	t.Run("errors", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=LADWP").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=SCE&from=abc").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=SCE&from=2024&to=2020").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=SCE&care=maybe").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=SCE&from=2000&to=3000").Code)
	})
}

func TestHandleTOU(t *testing.T) {
	srv := newTestServer(nil)

	get := func(query string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		srv.handleTOU(w, httptest.NewRequest("GET", "/api/tou?"+query, nil))
		return w
	}

	t.Run("weekday", func(t *testing.T) {
		w := get("utility=SCE&date=2025-01-06")
		require.Equal(t, http.StatusOK, w.Code)

		var prices []types.Price
		require.NoError(t, json.NewDecoder(w.Body).Decode(&prices))
		require.Len(t, prices, 24)
		assert.Equal(t, time.Monday, prices[0].TSStart.Weekday())
		assert.Equal(t, types.TOUOffPeak, prices[0].Period)
		assert.Equal(t, types.TOUSuperOffPeak, prices[8].Period)
		assert.Equal(t, types.TOUPeak, prices[16].Period)
		assert.Equal(t, 0.55, prices[16].DollarsPerKWH)
	})

	t.Run("defaults to today", func(t *testing.T) {
		w := get("utility=PGE")
		require.Equal(t, http.StatusOK, w.Code)

		var prices []types.Price
		require.NoError(t, json.NewDecoder(w.Body).Decode(&prices))
		assert.Len(t, prices, 24)
	})

	t.Run("errors", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("date=2025-01-06").Code)
		assert.Equal(t, http.StatusBadRequest, get("utility=SCE&date=01/06/2025").Code)
	})
}
