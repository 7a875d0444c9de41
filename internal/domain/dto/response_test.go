package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidPackage, "unknown").WithRequestID("req-1").WithDetail("package", "Gold")

	assert.Equal(t, ErrCodeInvalidPackage, err.Error)
	assert.Equal(t, "unknown", err.Message)
	assert.Equal(t, "req-1", err.RequestID)
	assert.Equal(t, map[string]string{"package": "Gold"}, err.Details)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewQuoteResponse_JSONNumbers(t *testing.T) {
	pkg, err := catalog.Default().Lookup("Budget")
	require.NoError(t, err)

	body, err := json.Marshal(NewQuoteResponse(model.ComputePricing(pkg, 10, 25)))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"package": "Budget",
		"group_size": 10,
		"margin_percent": 25,
		"cost_per_person": 2170,
		"sell_price_per_person": 2710,
		"profit_per_person": 540,
		"total_cost": 21700,
		"total_revenue": 27100,
		"total_profit": 5400
	}`, string(body))
}

func TestNewComparisonResponse(t *testing.T) {
	c := catalog.Default()
	var rows []model.PackageComparison
	for _, p := range c.Packages() {
		r := model.ComputePricing(p, p.BaseGroupSize, 0)
		rows = append(rows, model.PackageComparison{
			Package:            p,
			TotalCost:          r.TotalCost,
			CostPerPerson:      r.CostPerPerson,
			SellPricePerPerson: r.SellPricePerPerson,
			GroupProfit:        r.TotalProfit,
		})
	}

	got := NewComparisonResponse(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "Luxury", got[0].Package.Name)
	assert.Equal(t, 10, got[0].GroupSize)
	assert.Equal(t, float64(3290), got[0].SellPricePerPerson)
	assert.Equal(t, float64(0), got[0].GroupProfit)
	assert.Equal(t, float64(2170), got[1].Package.CostPerPerson)
}

func TestNewQuoteResponse_NonDividingBase(t *testing.T) {
	third := model.TourPackage{Name: "Third", BaseGroupSize: 3, TotalCostAtBaseGroupSize: 1000}

	resp := NewQuoteResponse(model.ComputePricing(third, 3, 25))

	assert.Equal(t, 333.33, resp.CostPerPerson)
	assert.Equal(t, 1000.0, resp.TotalCost)
	assert.Equal(t, 1260.0, resp.TotalRevenue)
	assert.Equal(t, 260.0, resp.TotalProfit)
	assert.Equal(t, 86.67, resp.ProfitPerPerson)
}
