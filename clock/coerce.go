package clock

import (
	"strconv"
	"strings"
)

// CoerceNumeric converts, in place, every numeric style key of record whose
// value is text into a float64. Other keys, values that are already numbers
// and text that does not parse are left as they are.
//
// Attribute-style sources deliver every value as text; run this before
// OverridesFromMap.
func CoerceNumeric(record map[string]any) {
	for _, key := range numericKeys {
		raw, ok := record[key]
		if !ok {
			continue
		}
		text, ok := raw.(string)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			continue
		}
		record[key] = parsed
	}
}
