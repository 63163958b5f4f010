// Package catalog provides the attribute-matching engine behind garment search.
//
// It models both an item's fixed attributes and a shopper's search criteria with the
// same structure, the AttributeSet, and decides whether an item satisfies a criteria
// set with a pure, read-only predicate.
//
// # Values
//
// Every attribute holds a Value, a closed tagged union:
//   - Scalar: exactly one label (e.g. brand "Acme", material "COTTON").
//   - Multi: a set of simultaneously-true labels (e.g. sizes an item is stocked in).
//
// # Matching
//
// For every key present in the criteria:
//  1. If the item has no entry for the key, the key is skipped.
//  2. Multi vs Multi: the sets must share at least one label.
//  3. Scalar vs Multi (either side): the scalar must be a member of the set.
//  4. Scalar vs Scalar: the labels must be equal.
//
// Any failing key rejects the item. The price range carried by the criteria is
// evaluated separately (inclusive bounds, absent bound = unbounded) and AND-ed with
// the attribute predicate.
//
// # Inventory
//
// The Inventory holds the catalog in insertion order and exposes the queries the
// search screens need:
//
//	inv := catalog.NewInventory()
//	_ = inv.Add(item)
//
//	criteria := catalog.NewAttributeSet([]catalog.Entry{
//	    {Key: catalog.KeyGarmentType, Value: catalog.Scalar("HOODIE")},
//	    {Key: catalog.KeySize, Value: catalog.Multi("L", "XL")},
//	}, catalog.WithPriceRange(0, 30))
//
//	matches := inv.FindMatch(criteria)
//	brands := inv.Brands()
//	ceiling := inv.MaxPrice()
//
// The package performs no I/O. An Inventory must be fully populated before it is
// queried; Add is not safe to call concurrently with the read operations.
package catalog
