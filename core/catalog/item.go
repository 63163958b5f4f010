package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductCode is the catalog identity of an item.
type ProductCode int64

// String returns the decimal form of the code.
func (c ProductCode) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ParseProductCode parses a decimal product code.
func ParseProductCode(s string) (ProductCode, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product code %q: %w", s, err)
	}
	return ProductCode(n), nil
}

// Item is a single catalog entry. Items are built once by a loader and never mutated.
type Item struct {
	Code        ProductCode  `json:"product_code"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Attributes  AttributeSet `json:"attributes"`
}

// Label returns the "Name (code)" form used to pick an item from a result list.
func (i Item) Label() string {
	return fmt.Sprintf("%s (%s)", i.Name, i.Code)
}

// Information renders the item block shown in search results. display may be nil.
func (i Item) Information(display func(key Key, label string) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item name: %s\n", i.Name)
	fmt.Fprintf(&b, "Caption: %s\n", i.Description)
	fmt.Fprintf(&b, "Product code: %s\n", i.Code)
	if i.Attributes.Len() > 0 {
		b.WriteString(i.Attributes.DescribeWith(display))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Price: $%.2f\n", i.Price)
	return b.String()
}
