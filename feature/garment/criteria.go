package garment

import (
	"errors"
	"fmt"
	"strings"

	"garment-geek/core/catalog"
	"garment-geek/core/utils"
)

// SearchRequest is a shopper's search as submitted by a form, the API or the CLI.
// Empty strings and "NA" leave an attribute unconstrained.
type SearchRequest struct {
	Type        string   `json:"type" example:"HOODIE"`
	Sizes       []string `json:"sizes" example:"M,L"`
	Brands      []string `json:"brands,omitempty"`
	Material    string   `json:"material,omitempty"`
	Neckline    string   `json:"neckline,omitempty"`
	SleeveType  string   `json:"sleeve_type,omitempty"`
	HoodieStyle string   `json:"hoodie_style,omitempty"`
	PocketType  string   `json:"pocket_type,omitempty"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
}

// Criteria validates the request and converts it into matching criteria.
//
// A garment type and at least one size are required. Neckline and sleeve type
// only apply to t-shirts, hoodie style and pocket type only to hoodies; values
// given for the other garment type are ignored.
func (r SearchRequest) Criteria() (catalog.AttributeSet, error) {
	if strings.TrimSpace(r.Type) == "" {
		return catalog.AttributeSet{}, &ValidationError{Field: "type", Message: "you must select a type of garment"}
	}
	garmentType, err := ParseGarmentType(r.Type)
	if err != nil {
		return catalog.AttributeSet{}, &ValidationError{Field: "type", Message: err.Error()}
	}
	entries := []catalog.Entry{{Key: catalog.KeyGarmentType, Value: catalog.Scalar(string(garmentType))}}

	brands := make([]string, 0, len(r.Brands))
	for _, b := range r.Brands {
		b = strings.TrimSpace(b)
		if b == "" || utils.NormalizeToken(b) == NA {
			continue
		}
		brands = append(brands, b)
	}
	if len(brands) > 0 {
		entries = append(entries, catalog.Entry{Key: catalog.KeyBrand, Value: catalog.Multi(brands...)})
	}

	sizeLabels := make([]string, 0, len(r.Sizes))
	for _, raw := range r.Sizes {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		size, err := ParseSize(raw)
		if err != nil {
			return catalog.AttributeSet{}, &ValidationError{Field: "sizes", Message: err.Error()}
		}
		sizeLabels = append(sizeLabels, string(size))
	}
	if len(sizeLabels) == 0 {
		return catalog.AttributeSet{}, &ValidationError{Field: "sizes", Message: "you must select at least one size"}
	}
	entries = append(entries, catalog.Entry{Key: catalog.KeySize, Value: catalog.Multi(sizeLabels...)})

	optional := []catalog.Key{catalog.KeyMaterial}
	switch garmentType {
	case TShirt:
		optional = append(optional, catalog.KeyNeckline, catalog.KeySleeveType)
	case Hoodie:
		optional = append(optional, catalog.KeyHoodieStyle, catalog.KeyPocketType)
	}
	for _, key := range optional {
		entry, ok, err := optionalEntry(key, r.field(key))
		if err != nil {
			return catalog.AttributeSet{}, &ValidationError{Field: string(key), Message: errors.Unwrap(err).Error()}
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	var opts []catalog.Option
	if r.MinPrice != nil {
		if *r.MinPrice < 0 {
			return catalog.AttributeSet{}, &ValidationError{Field: "min_price", Message: "min price must not be negative"}
		}
		opts = append(opts, catalog.WithMinPrice(*r.MinPrice))
	}
	if r.MaxPrice != nil {
		if *r.MaxPrice < 0 {
			return catalog.AttributeSet{}, &ValidationError{Field: "max_price", Message: "max price must not be negative"}
		}
		opts = append(opts, catalog.WithMaxPrice(*r.MaxPrice))
	}
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		return catalog.AttributeSet{}, &ValidationError{
			Field:   "min_price",
			Message: fmt.Sprintf("min price must be below your max price of $%.2f", *r.MaxPrice),
		}
	}

	return catalog.NewAttributeSet(entries, opts...), nil
}

func (r SearchRequest) field(key catalog.Key) string {
	switch key {
	case catalog.KeyMaterial:
		return r.Material
	case catalog.KeyNeckline:
		return r.Neckline
	case catalog.KeySleeveType:
		return r.SleeveType
	case catalog.KeyHoodieStyle:
		return r.HoodieStyle
	case catalog.KeyPocketType:
		return r.PocketType
	}
	return ""
}
