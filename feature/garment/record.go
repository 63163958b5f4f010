package garment

import (
	"strconv"
	"strings"

	"garment-geek/core/catalog"
	"garment-geek/core/utils"
	"garment-geek/feature/garment/models"
)

// Record is an inventory entry before validation. Enumerated fields hold raw
// text; "NA" or an empty string means the attribute does not apply.
type Record struct {
	Type        string
	Name        string
	Code        catalog.ProductCode
	Price       float64
	Brand       string
	Material    string
	Neckline    string
	SleeveType  string
	PocketType  string
	HoodieStyle string
	Sizes       []string
	Description string
}

// Item validates the record and builds the catalog item it describes.
// Attributes are stored in a fixed order: type, brand, material, size, then
// the type-specific ones. Material is always stored, as NA when it does not
// apply, so material searches never match such items. Other not-applicable
// values are left out.
func (r Record) Item() (catalog.Item, error) {
	if strings.TrimSpace(r.Name) == "" {
		return catalog.Item{}, &ParseError{Field: "name", Raw: r.Name, Err: ErrMalformedRecord}
	}
	if r.Price < 0 {
		return catalog.Item{}, &ParseError{Field: "price", Raw: strconv.FormatFloat(r.Price, 'f', -1, 64), Err: ErrNegativePrice}
	}

	garmentType, err := ParseGarmentType(r.Type)
	if err != nil {
		return catalog.Item{}, &ParseError{Field: "type", Raw: r.Type, Err: err}
	}
	entries := []catalog.Entry{{Key: catalog.KeyGarmentType, Value: catalog.Scalar(string(garmentType))}}

	if brand := strings.TrimSpace(r.Brand); brand != "" && utils.NormalizeToken(brand) != NA {
		entries = append(entries, catalog.Entry{Key: catalog.KeyBrand, Value: catalog.Scalar(brand)})
	}

	material := NA
	if strings.TrimSpace(r.Material) != "" {
		parsed, err := ParseMaterial(r.Material)
		if err != nil {
			return catalog.Item{}, &ParseError{Field: string(catalog.KeyMaterial), Raw: r.Material, Err: err}
		}
		material = string(parsed)
	}
	entries = append(entries, catalog.Entry{Key: catalog.KeyMaterial, Value: catalog.Scalar(material)})

	if len(r.Sizes) == 0 {
		return catalog.Item{}, &ParseError{Field: "size", Err: ErrNoSizes}
	}
	labels := make([]string, 0, len(r.Sizes))
	for _, raw := range r.Sizes {
		size, err := ParseSize(raw)
		if err != nil {
			return catalog.Item{}, &ParseError{Field: "size", Raw: raw, Err: err}
		}
		labels = append(labels, string(size))
	}
	entries = append(entries, catalog.Entry{Key: catalog.KeySize, Value: catalog.Multi(labels...)})

	for _, key := range []catalog.Key{catalog.KeyNeckline, catalog.KeySleeveType, catalog.KeyHoodieStyle, catalog.KeyPocketType} {
		entry, ok, err := optionalEntry(key, r.field(key))
		if err != nil {
			return catalog.Item{}, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	return catalog.Item{
		Code:        r.Code,
		Name:        strings.TrimSpace(r.Name),
		Price:       r.Price,
		Description: strings.TrimSpace(r.Description),
		Attributes:  catalog.NewAttributeSet(entries),
	}, nil
}

func (r Record) field(key catalog.Key) string {
	switch key {
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

func optionalEntry(key catalog.Key, raw string) (catalog.Entry, bool, error) {
	if strings.TrimSpace(raw) == "" {
		return catalog.Entry{}, false, nil
	}
	label, err := tableFor(key).parse(raw)
	if err != nil {
		return catalog.Entry{}, false, &ParseError{Field: string(key), Raw: raw, Err: err}
	}
	if label == NA {
		return catalog.Entry{}, false, nil
	}
	return catalog.Entry{Key: key, Value: catalog.Scalar(label)}, true, nil
}

// RecordFromItem is the inverse of Record.Item. Absent attributes become NA.
func RecordFromItem(item catalog.Item) Record {
	label := func(key catalog.Key) string {
		v, ok := item.Attributes.Get(key)
		if !ok {
			return NA
		}
		return v.Label()
	}
	var sizes []string
	if v, ok := item.Attributes.Get(catalog.KeySize); ok {
		sizes = v.Labels()
	}
	brand := ""
	if v, ok := item.Attributes.Get(catalog.KeyBrand); ok {
		brand = v.Label()
	}
	return Record{
		Type:        label(catalog.KeyGarmentType),
		Name:        item.Name,
		Code:        item.Code,
		Price:       item.Price,
		Brand:       brand,
		Material:    label(catalog.KeyMaterial),
		Neckline:    label(catalog.KeyNeckline),
		SleeveType:  label(catalog.KeySleeveType),
		PocketType:  label(catalog.KeyPocketType),
		HoodieStyle: label(catalog.KeyHoodieStyle),
		Sizes:       sizes,
		Description: item.Description,
	}
}

// Model converts the record to its database row.
func (r Record) Model() models.GarmentRecord {
	return models.GarmentRecord{
		ProductCode: int64(r.Code),
		Type:        r.Type,
		Name:        r.Name,
		Price:       r.Price,
		Brand:       r.Brand,
		Material:    r.Material,
		Neckline:    r.Neckline,
		SleeveType:  r.SleeveType,
		PocketType:  r.PocketType,
		HoodieStyle: r.HoodieStyle,
		Sizes:       strings.Join(r.Sizes, ","),
		Description: r.Description,
	}
}

// RecordFromModel converts a database row back into a record.
func RecordFromModel(m models.GarmentRecord) Record {
	return Record{
		Type:        m.Type,
		Name:        m.Name,
		Code:        catalog.ProductCode(m.ProductCode),
		Price:       m.Price,
		Brand:       m.Brand,
		Material:    m.Material,
		Neckline:    m.Neckline,
		SleeveType:  m.SleeveType,
		PocketType:  m.PocketType,
		HoodieStyle: m.HoodieStyle,
		Sizes:       utils.SplitList(m.Sizes, ","),
		Description: m.Description,
	}
}
