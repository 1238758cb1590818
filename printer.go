package sexpr

import "strconv"

func Print(val Value) string {
	switch t := val.(type) {
	case Number:
		return strconv.FormatFloat(float64(t), 'f', 6, 64)
	case Boolean:
		if t {
			return "true"
		}
		return "false"
	case NilValue, nil:
		return "nil"
	default:
		return "unknown"
	}
}
