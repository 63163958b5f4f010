package garment

import (
	"errors"
	"testing"

	"garment-geek/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestSearchRequest_Criteria(t *testing.T) {
	req := SearchRequest{
		Type:        "hoodie",
		Sizes:       []string{"m", "l"},
		Brands:      []string{"Acme", "NA", ""},
		Material:    "NA",
		Neckline:    "crew",
		HoodieStyle: "zip-up",
		MinPrice:    price(0),
		MaxPrice:    price(30),
	}

	criteria, err := req.Criteria()
	require.NoError(t, err)
	assert.Equal(t, []catalog.Key{
		catalog.KeyGarmentType,
		catalog.KeyBrand,
		catalog.KeySize,
		catalog.KeyHoodieStyle,
	}, criteria.Keys())

	brand, _ := criteria.Get(catalog.KeyBrand)
	assert.True(t, brand.Equal(catalog.Multi("Acme")))
	size, _ := criteria.Get(catalog.KeySize)
	assert.True(t, size.Equal(catalog.Multi("M", "L")))

	min, ok := criteria.MinPrice()
	require.True(t, ok)
	assert.Equal(t, 0.0, min)
	max, ok := criteria.MaxPrice()
	require.True(t, ok)
	assert.Equal(t, 30.0, max)
}

func TestSearchRequest_TShirtFields(t *testing.T) {
	criteria, err := SearchRequest{
		Type:        "T_SHIRT",
		Sizes:       []string{"S"},
		Neckline:    "v",
		SleeveType:  "short",
		PocketType:  "kangaroo",
		HoodieStyle: "athletic",
	}.Criteria()
	require.NoError(t, err)

	assert.True(t, criteria.Has(catalog.KeyNeckline))
	assert.True(t, criteria.Has(catalog.KeySleeveType))
	assert.False(t, criteria.Has(catalog.KeyPocketType))
	assert.False(t, criteria.Has(catalog.KeyHoodieStyle))
	_, hasMin := criteria.MinPrice()
	assert.False(t, hasMin)
}

func TestSearchRequest_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   SearchRequest
		field string
	}{
		{"Missing type", SearchRequest{Sizes: []string{"M"}}, "type"},
		{"Unknown type", SearchRequest{Type: "jumper", Sizes: []string{"M"}}, "type"},
		{"No sizes", SearchRequest{Type: "hoodie"}, "sizes"},
		{"Blank sizes", SearchRequest{Type: "hoodie", Sizes: []string{" "}}, "sizes"},
		{"Unknown size", SearchRequest{Type: "hoodie", Sizes: []string{"HUGE"}}, "sizes"},
		{"Unknown material", SearchRequest{Type: "hoodie", Sizes: []string{"M"}, Material: "silk"}, "material"},
		{"Negative min", SearchRequest{Type: "hoodie", Sizes: []string{"M"}, MinPrice: price(-1)}, "min_price"},
		{"Negative max", SearchRequest{Type: "hoodie", Sizes: []string{"M"}, MaxPrice: price(-1)}, "max_price"},
		{"Min above max", SearchRequest{Type: "hoodie", Sizes: []string{"M"}, MinPrice: price(50), MaxPrice: price(10)}, "min_price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Criteria()
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.NotEmpty(t, verr.Message)
		})
	}
}
