package shoppinglist

import (
	"strconv"
	"strings"
)

// SumQuantities combines two quantity strings. When both parse as numbers
// the result is their sum serialized back to text; otherwise the originals
// are joined with " + " so no information is dropped for manual review.
func SumQuantities(existing, incoming string) string {
	a, errA := strconv.ParseFloat(strings.TrimSpace(existing), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(incoming), 64)
	if errA != nil || errB != nil {
		return existing + " + " + incoming
	}
	return strconv.FormatFloat(a+b, 'f', -1, 64)
}
