//go:build !integration

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/guttosm/tour-service/internal/domain/dto"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/guttosm/tour-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListPackages(t *testing.T) {
	w := do(t, newTestRouter(t, nil), http.MethodGet, "/api/v1/packages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.PackageResponse
	envelope(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "Luxury", got[0].Name)
	assert.Equal(t, int64(32900), got[0].TotalCostAtBaseGroupSize)
	assert.Equal(t, float64(3290), got[0].CostPerPerson)
	assert.NotEmpty(t, got[0].Lodging)
	assert.Equal(t, "Budget", got[1].Name)
}

func TestCatalogHandler_GetPackage(t *testing.T) {
	router := newTestRouter(t, nil)

	w := do(t, router, http.MethodGet, "/api/v1/packages/Budget", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got dto.PackageResponse
	envelope(t, w, &got)
	assert.Equal(t, "Budget", got.Name)
	assert.Equal(t, 10, got.BaseGroupSize)

	w = do(t, router, http.MethodGet, "/api/v1/packages/Gold", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, dto.ErrCodeInvalidPackage, errResp.Error)
}

func TestCatalogHandler_Compare(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantMargin int
		wantSell   []float64
	}{
		{name: "default margin", query: "", wantStatus: http.StatusOK, wantMargin: 25, wantSell: []float64{4110, 2710}},
		{name: "at cost", query: "?margin=0", wantStatus: http.StatusOK, wantMargin: 0, wantSell: []float64{3290, 2170}},
		{name: "not an integer", query: "?margin=12.5", wantStatus: http.StatusBadRequest},
	}

	router := newTestRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/v1/packages/compare"+tt.query, "")
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var rows []dto.ComparisonRowResponse
			envelope(t, w, &rows)
			require.Len(t, rows, len(tt.wantSell))
			for i, row := range rows {
				assert.Equal(t, tt.wantMargin, row.MarginPercent)
				assert.Equal(t, tt.wantSell[i], row.SellPricePerPerson)
			}
		})
	}
}

func TestCatalogHandler_CompareAudit(t *testing.T) {
	sink := &recordingSink{}
	do(t, newTestRouter(t, sink), http.MethodGet, "/api/v1/packages/compare?margin=30", "")

	entries := sink.byAction(middleware.ActionCompare)
	require.Len(t, entries, 1)
	assert.Equal(t, 30, entries[0].Fields["margin_percent"])
}

func TestCatalogHandler_Itinerary(t *testing.T) {
	w := do(t, newTestRouter(t, nil), http.MethodGet, "/api/v1/itinerary", "")
	require.Equal(t, http.StatusOK, w.Code)

	var days []model.ItineraryDay
	envelope(t, w, &days)
	require.Len(t, days, 2)
	assert.Equal(t, "Day 1", days[0].Day)
	assert.NotEmpty(t, days[1].Blocks)
}
