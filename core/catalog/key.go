package catalog

import (
	"fmt"
	"strings"
)

// Key identifies a searchable attribute.
type Key string

const (
	KeyGarmentType Key = "garment_type"
	KeyBrand       Key = "brand"
	KeyMaterial    Key = "material"
	KeySize        Key = "size"
	KeyNeckline    Key = "neckline"
	KeySleeveType  Key = "sleeve_type"
	KeyHoodieStyle Key = "hoodie_style"
	KeyPocketType  Key = "pocket_type"
)

var keyLabels = map[Key]string{
	KeyGarmentType: "Garment type",
	KeyBrand:       "Brand",
	KeyMaterial:    "Material",
	KeySize:        "Size",
	KeyNeckline:    "Neckline",
	KeySleeveType:  "Sleeve type",
	KeyHoodieStyle: "Hoodie style",
	KeyPocketType:  "Pocket type",
}

// Keys returns every known attribute key in display order.
func Keys() []Key {
	return []Key{
		KeyGarmentType,
		KeyBrand,
		KeyMaterial,
		KeySize,
		KeyNeckline,
		KeySleeveType,
		KeyHoodieStyle,
		KeyPocketType,
	}
}

// IsValid reports whether k is one of the known attribute keys.
func (k Key) IsValid() bool {
	_, ok := keyLabels[k]
	return ok
}

// String returns the human-readable label used in descriptions.
func (k Key) String() string {
	if label, ok := keyLabels[k]; ok {
		return label
	}
	return string(k)
}

// ParseKey converts an identifier such as "sleeve_type" or "Sleeve-Type" into a Key.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !k.IsValid() {
		return "", fmt.Errorf("unknown attribute key %q", s)
	}
	return k, nil
}
