package param

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Format returns the canonical string form of a value.
//
// Two values format to the same string iff they are the same parameter
// setting, which is what makes the result usable as a grouping key.
func Format(v Value) string {
	switch val := v.(type) {
	case String:
		// NFC normalize so visually identical names bucket together
		return norm.NFC.String(string(val))
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(bool(val))
	case Array:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = Format(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// FormatFloat formats a bare float the same way Format formats a Float.
func FormatFloat(f float64) string {
	return Format(Float(f))
}
