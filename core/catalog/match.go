package catalog

// Matches reports whether item satisfies every attribute constraint in criteria.
// Keys the item does not carry are skipped. Price bounds are not considered here;
// see Match.
func Matches(criteria, item AttributeSet) bool {
	for _, k := range criteria.keys {
		have, ok := item.entries[k]
		if !ok {
			continue
		}
		if !valuesMatch(criteria.entries[k], have) {
			return false
		}
	}
	return true
}

// Match is the full per-item decision: attribute constraints AND price range.
func Match(criteria AttributeSet, item Item) bool {
	return criteria.PriceInRange(item.Price) && Matches(criteria, item.Attributes)
}

func valuesMatch(want, have Value) bool {
	switch {
	case want.kind == KindMulti && have.kind == KindMulti:
		return intersects(want, have)
	case want.kind == KindMulti && have.kind == KindScalar:
		return want.Contains(have.label)
	case want.kind == KindScalar && have.kind == KindMulti:
		return have.Contains(want.label)
	case want.kind == KindScalar && have.kind == KindScalar:
		return want.label == have.label
	default:
		return false
	}
}

// intersects reports whether two set values share at least one label.
func intersects(a, b Value) bool {
	small, large := a, b
	if len(small.set) > len(large.set) {
		small, large = large, small
	}
	for l := range small.set {
		if _, ok := large.set[l]; ok {
			return true
		}
	}
	return false
}
