package sexpr

// Equals compares two values of the same kind. Values of different kinds are
// not comparable and produce a type error rather than false.
func Equals(v1, v2 Value) (bool, error) {
	if v1.Kind() != v2.Kind() {
		return false, newError(TypeError, -1, "expected a and b to have the same kind (got %s and %s)", v1.Kind(), v2.Kind())
	}

	switch t := v1.(type) {
	case Number:
		return t == v2.(Number), nil
	case Boolean:
		return t == v2.(Boolean), nil
	case NilValue:
		return true, nil
	default:
		return false, newError(InternalError, -1, "unknown runtime value of kind '%s'", v1.Kind())
	}
}
