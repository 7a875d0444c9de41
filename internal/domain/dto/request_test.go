package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request QuoteRequest
		wantErr error
	}{
		{name: "valid", request: QuoteRequest{Package: "Budget"}},
		{name: "unknown name is not a validation concern", request: QuoteRequest{Package: "Gold"}},
		{name: "empty", request: QuoteRequest{}, wantErr: ErrMissingPackage},
		{name: "blank", request: QuoteRequest{Package: "   "}, wantErr: ErrMissingPackage},
		{name: "negative values pass through", request: QuoteRequest{Package: "Budget", GroupSize: intPtr(-3), MarginPercent: intPtr(-50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.request.Validate())
		})
	}
}

func TestQuoteRequest_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		request    QuoteRequest
		wantSize   int
		wantMargin int
	}{
		{name: "defaults", request: QuoteRequest{Package: "Budget"}, wantSize: 10, wantMargin: 25},
		{name: "explicit values", request: QuoteRequest{GroupSize: intPtr(4), MarginPercent: intPtr(40)}, wantSize: 4, wantMargin: 40},
		{name: "explicit zero overrides default", request: QuoteRequest{GroupSize: intPtr(0), MarginPercent: intPtr(0)}, wantSize: 0, wantMargin: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, margin := tt.request.Resolve(10, 25)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantMargin, margin)
		})
	}
}

func TestQuoteRequest_DecodeRejectsNonIntegers(t *testing.T) {
	for _, body := range []string{
		`{"package":"Budget","group_size":10.5}`,
		`{"package":"Budget","group_size":"10"}`,
		`{"package":"Budget","margin_percent":true}`,
	} {
		var req QuoteRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}

	var req QuoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"package":"Luxury","group_size":12,"margin_percent":30}`), &req))
	assert.Equal(t, 12, *req.GroupSize)
	assert.Equal(t, 30, *req.MarginPercent)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "package: is required", ErrMissingPackage.Error())
}
