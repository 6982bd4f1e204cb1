package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-management-api/internal/application/dto"
)

func TestQuantity_UnmarshalNumber(t *testing.T) {
	var item dto.StockLineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_match_id":"P1","product_quantity":5}`), &item))
	assert.Equal(t, 5, item.ProductQuantity.Int())
}

func TestQuantity_UnmarshalNumericString(t *testing.T) {
	var item dto.StockLineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_match_id":"P1","product_quantity":"12"}`), &item))
	assert.Equal(t, 12, item.ProductQuantity.Int())
}

func TestQuantity_UnmarshalPaddedString(t *testing.T) {
	var item dto.StockLineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_quantity":" 7 "}`), &item))
	assert.Equal(t, 7, item.ProductQuantity.Int())
}

func TestQuantity_UnmarshalNegative(t *testing.T) {
	// Negative values decode fine; the engine is what rejects them.
	var item dto.StockLineItem
	require.NoError(t, json.Unmarshal([]byte(`{"product_quantity":-4}`), &item))
	assert.Equal(t, -4, item.ProductQuantity.Int())
}

func TestQuantity_UnmarshalRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		`{"product_quantity":"lots"}`,
		`{"product_quantity":1.5}`,
		`{"product_quantity":""}`,
		`{"product_quantity":true}`,
	} {
		var item dto.StockLineItem
		assert.Error(t, json.Unmarshal([]byte(raw), &item), "raw: %s", raw)
	}
}

func TestQuantity_MarshalAsNumber(t *testing.T) {
	out, err := json.Marshal(dto.StockLineItem{ProductMatchID: "P1", ProductQuantity: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_match_id":"P1","product_quantity":3}`, string(out))
}
