package garment

import (
	"errors"
	"fmt"
	"strings"

	"garment-geek/core/catalog"
	"garment-geek/core/utils"
)

// NA marks an attribute that does not apply to a garment. Only material keeps it
// as a stored value.
const NA = "NA"

// ErrUnknownValue is wrapped by every enum parse failure.
var ErrUnknownValue = errors.New("unknown value")

// GarmentType distinguishes the two kinds of garment on sale.
type GarmentType string

const (
	TShirt GarmentType = "T_SHIRT"
	Hoodie GarmentType = "HOODIE"
)

// Size is a stocked garment size.
type Size string

const (
	SizeXS    Size = "XS"
	SizeS     Size = "S"
	SizeM     Size = "M"
	SizeL     Size = "L"
	SizeXL    Size = "XL"
	SizeXXL   Size = "XXL"
	SizeXXXL  Size = "XXXL"
	SizeXXXXL Size = "XXXXL"
)

// Material is the main fabric of a garment.
type Material string

const (
	Cotton    Material = "COTTON"
	WoolBlend Material = "WOOL_BLEND"
	Polyester Material = "POLYESTER"
)

// Neckline applies to t-shirts only.
type Neckline string

const (
	NecklineCrew  Neckline = "CREW"
	NecklineV     Neckline = "V"
	NecklineScoop Neckline = "SCOOP"
	NecklineHigh  Neckline = "HIGH"
)

// SleeveType applies to t-shirts only.
type SleeveType string

const (
	SleeveLong       SleeveType = "LONG"
	SleeveShort      SleeveType = "SHORT"
	SleeveSleeveless SleeveType = "SLEEVELESS"
	SleeveBatWing    SleeveType = "BAT_WING"
	SleevePuffed     SleeveType = "PUFFED"
)

// PocketType applies to hoodies only.
type PocketType string

const (
	PocketKangaroo PocketType = "KANGAROO"
	PocketPatch    PocketType = "PATCH"
	PocketZipper   PocketType = "ZIPPER"
	PocketSlash    PocketType = "SLASH"
	PocketFaux     PocketType = "FAUX"
)

// HoodieStyle applies to hoodies only.
type HoodieStyle string

const (
	StylePullover  HoodieStyle = "PULLOVER"
	StyleZipUp     HoodieStyle = "ZIP_UP"
	StyleOverSized HoodieStyle = "OVER_SIZED"
	StyleAthletic  HoodieStyle = "ATHLETIC"
)

// Choice is an enumerated value with its display name, in declaration order.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type enumTable struct {
	field   string
	choices []Choice
	byValue map[string]string
	aliases map[string]string
	allowNA bool
}

func newEnumTable(field string, allowNA bool, choices ...Choice) *enumTable {
	t := &enumTable{
		field:   field,
		choices: choices,
		byValue: make(map[string]string, len(choices)),
		aliases: make(map[string]string, 2*len(choices)),
		allowNA: allowNA,
	}
	for _, c := range choices {
		t.byValue[c.Value] = c.Label
		t.aliases[squash(c.Value)] = c.Value
		t.aliases[squash(utils.NormalizeToken(c.Label))] = c.Value
	}
	return t
}

// squash drops separators so "PULL_OVER" and "PULLOVER" compare equal.
func squash(token string) string {
	return strings.ReplaceAll(token, "_", "")
}

// parse accepts a value's name or its display name, ignoring case and separators.
func (t *enumTable) parse(raw string) (string, error) {
	token := utils.NormalizeToken(raw)
	if t.allowNA && token == NA {
		return NA, nil
	}
	if _, ok := t.byValue[token]; ok {
		return token, nil
	}
	if value, ok := t.aliases[squash(token)]; ok {
		return value, nil
	}
	return "", fmt.Errorf("%s %q: %w", t.field, raw, ErrUnknownValue)
}

func (t *enumTable) display(value string) string {
	if label, ok := t.byValue[value]; ok {
		return label
	}
	return value
}

var (
	garmentTypes = newEnumTable("garment type", false,
		Choice{string(TShirt), "T-shirt"},
		Choice{string(Hoodie), "Hoodie"},
	)
	sizes = newEnumTable("size", false,
		Choice{string(SizeXS), "Extra small"},
		Choice{string(SizeS), "Small"},
		Choice{string(SizeM), "Medium"},
		Choice{string(SizeL), "Large"},
		Choice{string(SizeXL), "XL"},
		Choice{string(SizeXXL), "2XL"},
		Choice{string(SizeXXXL), "3XL"},
		Choice{string(SizeXXXXL), "4XL"},
	)
	materials = newEnumTable("material", true,
		Choice{string(Cotton), "Cotton"},
		Choice{string(WoolBlend), "Wool blend"},
		Choice{string(Polyester), "Polyester"},
	)
	necklines = newEnumTable("neckline", true,
		Choice{string(NecklineCrew), "Crew neck"},
		Choice{string(NecklineV), "V - neck"},
		Choice{string(NecklineScoop), "Scoop neck"},
		Choice{string(NecklineHigh), "High neck"},
	)
	sleeveTypes = newEnumTable("sleeve type", true,
		Choice{string(SleeveLong), "Long"},
		Choice{string(SleeveShort), "Short"},
		Choice{string(SleeveSleeveless), "Sleeveless"},
		Choice{string(SleeveBatWing), "Bat-wing"},
		Choice{string(SleevePuffed), "Puffed"},
	)
	pocketTypes = newEnumTable("pocket type", true,
		Choice{string(PocketKangaroo), "Kangaroo"},
		Choice{string(PocketPatch), "Patch"},
		Choice{string(PocketZipper), "Zipper"},
		Choice{string(PocketSlash), "Slash"},
		Choice{string(PocketFaux), "Faux"},
	)
	hoodieStyles = newEnumTable("hoodie style", true,
		Choice{string(StylePullover), "Pull-over"},
		Choice{string(StyleZipUp), "Zip-up"},
		Choice{string(StyleOverSized), "Over-sized"},
		Choice{string(StyleAthletic), "Athletic"},
	)
)

// tableFor returns the enum table backing an attribute key, or nil for free text.
func tableFor(key catalog.Key) *enumTable {
	switch key {
	case catalog.KeyGarmentType:
		return garmentTypes
	case catalog.KeySize:
		return sizes
	case catalog.KeyMaterial:
		return materials
	case catalog.KeyNeckline:
		return necklines
	case catalog.KeySleeveType:
		return sleeveTypes
	case catalog.KeyPocketType:
		return pocketTypes
	case catalog.KeyHoodieStyle:
		return hoodieStyles
	default:
		return nil
	}
}

// ParseGarmentType parses "t-shirt", "T_SHIRT", "hoodie"...
func ParseGarmentType(raw string) (GarmentType, error) {
	v, err := garmentTypes.parse(raw)
	return GarmentType(v), err
}

// ParseSize parses a size code such as "xl".
func ParseSize(raw string) (Size, error) {
	v, err := sizes.parse(raw)
	return Size(v), err
}

// ParseMaterial parses a material; "NA" is accepted and returned as NA.
func ParseMaterial(raw string) (Material, error) {
	v, err := materials.parse(raw)
	return Material(v), err
}

// ParseNeckline parses a neckline; "NA" is accepted.
func ParseNeckline(raw string) (Neckline, error) {
	v, err := necklines.parse(raw)
	return Neckline(v), err
}

// ParseSleeveType parses a sleeve type; "NA" is accepted.
func ParseSleeveType(raw string) (SleeveType, error) {
	v, err := sleeveTypes.parse(raw)
	return SleeveType(v), err
}

// ParsePocketType parses a pocket type; "NA" is accepted.
func ParsePocketType(raw string) (PocketType, error) {
	v, err := pocketTypes.parse(raw)
	return PocketType(v), err
}

// ParseHoodieStyle parses a hoodie style; "NA" is accepted.
func ParseHoodieStyle(raw string) (HoodieStyle, error) {
	v, err := hoodieStyles.parse(raw)
	return HoodieStyle(v), err
}

func (g GarmentType) DisplayName() string { return garmentTypes.display(string(g)) }
func (s Size) DisplayName() string        { return sizes.display(string(s)) }
func (m Material) DisplayName() string    { return materials.display(string(m)) }
func (n Neckline) DisplayName() string    { return necklines.display(string(n)) }
func (s SleeveType) DisplayName() string  { return sleeveTypes.display(string(s)) }
func (p PocketType) DisplayName() string  { return pocketTypes.display(string(p)) }
func (h HoodieStyle) DisplayName() string { return hoodieStyles.display(string(h)) }

// DisplayLabel maps a stored attribute label to its display name.
// Free-text attributes such as brand are returned unchanged.
func DisplayLabel(key catalog.Key, label string) string {
	if t := tableFor(key); t != nil {
		return t.display(label)
	}
	return label
}

// Describe renders an item the way search results show it.
func Describe(item catalog.Item) string {
	return item.Information(DisplayLabel)
}

// Options lists every selectable value per attribute, for building search forms.
type Options struct {
	Types        []Choice `json:"types"`
	Sizes        []Choice `json:"sizes"`
	Materials    []Choice `json:"materials"`
	Necklines    []Choice `json:"necklines"`
	SleeveTypes  []Choice `json:"sleeve_types"`
	PocketTypes  []Choice `json:"pocket_types"`
	HoodieStyles []Choice `json:"hoodie_styles"`
	Brands       []string `json:"brands"`
	MaxPrice     float64  `json:"max_price"`
}

func newOptions(inv *catalog.Inventory) Options {
	return Options{
		Types:        garmentTypes.choices,
		Sizes:        sizes.choices,
		Materials:    materials.choices,
		Necklines:    necklines.choices,
		SleeveTypes:  sleeveTypes.choices,
		PocketTypes:  pocketTypes.choices,
		HoodieStyles: hoodieStyles.choices,
		Brands:       inv.Brands(),
		MaxPrice:     inv.MaxPrice(),
	}
}
