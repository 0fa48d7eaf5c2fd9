package dto

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/hapkiduki/shipping-console/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{name: "number", json: `12.5`, want: 12.5},
		{name: "integer", json: `3`, want: 3},
		{name: "numeric string", json: `"7.25"`, want: 7.25},
		{name: "padded string", json: `" 4 "`, want: 4},
		{name: "empty string", json: `""`, want: 0},
		{name: "text", json: `"abc"`, want: 0},
		{name: "negative", json: `-2`, want: 0},
		{name: "negative string", json: `"-2"`, want: 0},
		{name: "NaN string", json: `"NaN"`, want: 0},
		{name: "infinity string", json: `"Inf"`, want: 0},
		{name: "bool", json: `true`, want: 0},
		{name: "object", json: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FlexFloat(99)
			require.NoError(t, f.UnmarshalJSON([]byte(tt.json)))
			assert.Equal(t, tt.want, float64(f))
		})
	}
}

func TestUpdatePieceRequest_ToPieceUpdate(t *testing.T) {
	var req UpdatePieceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"physical_weight":"5","length":"x","height":null}`), &req))

	u := req.ToPieceUpdate()
	require.NotNil(t, u.PhysicalWeight)
	assert.Equal(t, 5.0, *u.PhysicalWeight)
	require.NotNil(t, u.Length)
	assert.Equal(t, 0.0, *u.Length, "unparsable input coerces to zero")
	assert.Nil(t, u.Width)
	assert.Nil(t, u.Height)
	assert.True(t, u.TouchesDimensions())
}

func TestUpdateDraftRequest_ToDraftDetails(t *testing.T) {
	service := " Express "
	req := UpdateDraftRequest{Service: &service}

	details := req.ToDraftDetails()
	require.NotNil(t, details.Service)
	assert.Equal(t, entity.ServiceTypeExpress, *details.Service)
	assert.Nil(t, details.Reference)
}

func TestBusinessUnitFilterFromQuery(t *testing.T) {
	q := url.Values{
		"search":        {" hub "},
		"status":        {"active"},
		"createdAtFrom": {"2024-02-01"},
		"createdAtTo":   {"2024-02-15"},
		"page":          {"2"},
		"pageSize":      {"5"},
	}

	filter, err := BusinessUnitFilterFromQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "hub", filter.Search)
	assert.Equal(t, entity.BusinessUnitStatusActive, filter.Status)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 5, filter.PageSize)
	require.NotNil(t, filter.CreatedFrom)
	require.NotNil(t, filter.CreatedTo)
	assert.True(t, filter.CreatedTo.After(time.Date(2024, 2, 15, 23, 0, 0, 0, time.UTC)))

	_, err = BusinessUnitFilterFromQuery(url.Values{"page": {"two"}})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "page", fe.Field)

	_, err = BusinessUnitFilterFromQuery(url.Values{"createdAtFrom": {"yesterday"}})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "createdAtFrom", fe.Field)
}

func TestNewPaginateResponse(t *testing.T) {
	page := NewPaginateResponse[int](nil, 12, 1, 10)
	assert.NotNil(t, page.Items)
	assert.True(t, page.HasMore)

	page = NewPaginateResponse([]int{1, 2}, 12, 2, 10)
	assert.False(t, page.HasMore)

	page = NewPaginateResponse([]int{}, 5, 92233720368547760, 100)
	assert.False(t, page.HasMore, "huge page must not wrap around")

	page = NewPaginateResponse([]int{}, 0, 1, 10)
	assert.False(t, page.HasMore)
}
