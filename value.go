package sexpr

// Kind is the tag of a runtime value.
type Kind int

const (
	KindNil Kind = iota
	KindNumber
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Value is the result of evaluating an expression: a Number, a Boolean or Nil.
type Value interface {
	Kind() Kind
}

type Number float64

type Boolean bool

// NilValue is the result of forms evaluated only for their side effects.
type NilValue struct{}

var Nil Value = NilValue{}

func (Number) Kind() Kind   { return KindNumber }
func (Boolean) Kind() Kind  { return KindBoolean }
func (NilValue) Kind() Kind { return KindNil }
