package spec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToStringList coerces a decoded YAML value into an ordered list of strings.
// A nil value yields an empty list. List elements are stringified and trimmed
// in their original order; nil elements are dropped. A lone string becomes a
// single-element list unless it is blank after trimming. Any other scalar
// becomes a single-element list of its string form.
//
// Coercion is idempotent: applying it to an already-canonical list returns
// an equal list.
func ToStringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, strings.TrimSpace(Stringify(item)))
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}
		return []string{trimmed}
	default:
		return []string{Stringify(value)}
	}
}

// Stringify renders a decoded YAML value as a plain string. Nil renders as
// the empty string; everything else follows its natural text form.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// Integral floats keep one decimal place so an unquoted 1.0
		// renders as "1.0", not "1".
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
